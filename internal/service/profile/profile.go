package profile

import (
	"context"
	"time"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/domain"
	"campus-delivery/internal/logx"
	"campus-delivery/internal/repository"
)

const (
	defaultEarningsLimit = 20
	maxEarningsLimit     = 100
)

type profileStore interface {
	ToggleOnline(ctx context.Context, agentID int64) (*bool, error)
	GetDashboard(ctx context.Context, agentID int64, now time.Time) (*repository.Dashboard, error)
}

type earningsStore interface {
	ListByAgent(ctx context.Context, agentID int64, limit int) ([]domain.EarningsTransaction, error)
}

// Service serves agent-facing profile operations.
type Service struct {
	profiles         profileStore
	earnings         earningsStore
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a profile Service.
func NewService(profiles profileStore, earnings earningsStore, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		profiles:         profiles,
		earnings:         earnings,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// ToggleStatus flips the agent's online flag and returns the new state.
func (s *Service) ToggleStatus(ctx context.Context, agentID int64) (bool, error) {
	if agentID <= 0 {
		return false, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	online, err := s.profiles.ToggleOnline(ctx, agentID)
	if err != nil {
		return false, err
	}
	if online == nil {
		return false, apperr.ErrNotFound
	}

	s.logger.Info("agent status toggled",
		logx.Int64("agent_id", agentID),
		logx.Any("online", *online),
	)
	return *online, nil
}

// Dashboard returns aggregated operational counters for an agent.
func (s *Service) Dashboard(ctx context.Context, agentID int64) (*repository.Dashboard, error) {
	if agentID <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	d, err := s.profiles.GetDashboard(ctx, agentID, s.now())
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// Earnings lists the agent's most recent ledger entries.
func (s *Service) Earnings(ctx context.Context, agentID int64, limit int) ([]domain.EarningsTransaction, error) {
	if agentID <= 0 {
		return nil, apperr.ErrInvalid
	}
	if limit <= 0 {
		limit = defaultEarningsLimit
	}
	if limit > maxEarningsLimit {
		limit = maxEarningsLimit
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	return s.earnings.ListByAgent(ctx, agentID, limit)
}
