package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"campus-delivery/internal/domain"
	"campus-delivery/internal/repository"
	"campus-delivery/internal/service/assignment"
	"campus-delivery/internal/service/profile"
	"campus-delivery/internal/service/quote"
)

type assignmentUsecase interface {
	Accept(ctx context.Context, orderID, agentID int64) (domain.AcceptResult, error)
	Claim(ctx context.Context, deliveryID, agentID int64) (*domain.Assignment, error)
}

// NewAssignmentUsecase wires an assignment Service into an assignmentUsecase.
func NewAssignmentUsecase(svc *assignment.Service) assignmentUsecase {
	return svc
}

type orderLister interface {
	ListAccepting(ctx context.Context, limit int) ([]domain.Order, error)
}

// NewOrderLister wires an OrderRepo into an orderLister.
func NewOrderLister(repo *repository.OrderRepo) orderLister {
	return repo
}

type quoteUsecase interface {
	Fee(ctx context.Context, dropOff domain.Coordinate) (decimal.Decimal, float64, error)
	Resolve(ctx context.Context, address string) (domain.Coordinate, error)
}

// NewQuoteUsecase wires a quote Service into a quoteUsecase.
func NewQuoteUsecase(svc *quote.Service) quoteUsecase {
	return svc
}

type profileUsecase interface {
	ToggleStatus(ctx context.Context, agentID int64) (bool, error)
	Dashboard(ctx context.Context, agentID int64) (*repository.Dashboard, error)
	Earnings(ctx context.Context, agentID int64, limit int) ([]domain.EarningsTransaction, error)
}

// NewProfileUsecase wires a profile Service into a profileUsecase.
func NewProfileUsecase(svc *profile.Service) profileUsecase {
	return svc
}
