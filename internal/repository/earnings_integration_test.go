//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"campus-delivery/internal/domain"
	"campus-delivery/internal/repository"
)

type EarningsRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.EarningsRepo
}

func (s *EarningsRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewEarningsRepo(tcPool)
}

func (s *EarningsRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(),
		`TRUNCATE earnings_transactions RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *EarningsRepositorySuite) insertEntry(agentID int64, ref string, createdAt time.Time) {
	_, err := s.pool.Exec(context.Background(), `
        INSERT INTO earnings_transactions (reference, delivery_person_id, type, amount, status, created_at)
        VALUES ($1, $2, 'delivery', 3.00, 'completed', $3)
    `, ref, agentID, createdAt)
	s.Require().NoError(err)
}

func (s *EarningsRepositorySuite) TestListByAgent_NewestFirst() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	for i := 0; i < 3; i++ {
		s.insertEntry(101, fmt.Sprintf("ERN-%d", i+1), now.Add(time.Duration(i)*time.Minute))
	}
	s.insertEntry(202, "ERN-OTHER", now)

	got, err := s.repo.ListByAgent(ctx, 101, 10)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal("ERN-3", got[0].Reference)
	s.Equal("ERN-1", got[2].Reference)
	for _, t := range got {
		s.Equal(int64(101), t.DeliveryAgent)
		s.Equal(domain.EarningsDelivery, t.Type)
		s.Equal(domain.EarningsCompleted, t.Status)
	}
}

func (s *EarningsRepositorySuite) TestListByAgent_Limit() {
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		s.insertEntry(101, fmt.Sprintf("ERN-%d", i+1), now.Add(time.Duration(i)*time.Second))
	}

	got, err := s.repo.ListByAgent(ctx, 101, 2)
	s.Require().NoError(err)
	s.Len(got, 2)
}

func (s *EarningsRepositorySuite) TestListByAgent_Empty() {
	got, err := s.repo.ListByAgent(context.Background(), 9999, 10)
	s.Require().NoError(err)
	s.Empty(got)
}

func TestEarningsRepositorySuite(t *testing.T) {
	suite.Run(t, new(EarningsRepositorySuite))
}
