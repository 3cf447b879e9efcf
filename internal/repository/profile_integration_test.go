//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"campus-delivery/internal/domain"
	"campus-delivery/internal/repository"
)

type ProfileRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.ProfileRepo
}

func (s *ProfileRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewProfileRepo(tcPool)
}

func (s *ProfileRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(),
		`TRUNCATE orders, assignments, delivery_profiles, earnings_transactions RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *ProfileRepositorySuite) insertProfile(agentID int64, online bool, maxLoad int) {
	_, err := s.pool.Exec(context.Background(), `
        INSERT INTO delivery_profiles (user_id, phone, online, max_concurrent_load, lat, lng)
        VALUES ($1, '+2340000000', $2, $3, 6.89, 3.72)
    `, agentID, online, maxLoad)
	s.Require().NoError(err)
}

func (s *ProfileRepositorySuite) insertOrder(id, agentID int64, status domain.OrderStatus, deliveredAt *time.Time) {
	_, err := s.pool.Exec(context.Background(), `
        INSERT INTO orders (id, reference, customer_id, delivery_person_id, total_price, status, delivered_at)
        VALUES ($1, 'ORD', 1, $2, 10, $3, $4)
    `, id, agentID, string(status), deliveredAt)
	s.Require().NoError(err)
}

func (s *ProfileRepositorySuite) TestGet() {
	ctx := context.Background()

	s.insertProfile(101, true, 3)
	s.insertOrder(1, 101, domain.OrderAssigned, nil)
	s.insertOrder(2, 101, domain.OrderOnTheWay, nil)
	s.insertOrder(3, 101, domain.OrderDelivered, nil)

	p, err := s.repo.Get(ctx, 101)
	s.Require().NoError(err)
	s.Require().NotNil(p)
	s.Equal(int64(101), p.UserID)
	s.True(p.Online)
	s.Equal(2, p.CurrentLoad, "delivered orders must not count toward load")
	s.Equal(3, p.MaxConcurrentLoad)
	s.Require().NotNil(p.Location)
	s.InDelta(6.89, p.Location.Lat, 1e-9)
}

func (s *ProfileRepositorySuite) TestGet_NotFound() {
	p, err := s.repo.Get(context.Background(), 9999)
	s.Require().NoError(err)
	s.Nil(p)
}

func (s *ProfileRepositorySuite) TestToggleOnline() {
	ctx := context.Background()

	s.insertProfile(101, false, 5)

	on, err := s.repo.ToggleOnline(ctx, 101)
	s.Require().NoError(err)
	s.Require().NotNil(on)
	s.True(*on)

	off, err := s.repo.ToggleOnline(ctx, 101)
	s.Require().NoError(err)
	s.Require().NotNil(off)
	s.False(*off)
}

func (s *ProfileRepositorySuite) TestToggleOnline_MissingProfile() {
	on, err := s.repo.ToggleOnline(context.Background(), 9999)
	s.Require().NoError(err)
	s.Nil(on)
}

func (s *ProfileRepositorySuite) TestListAvailable() {
	ctx := context.Background()

	s.insertProfile(101, true, 5)
	s.insertProfile(102, false, 5)
	s.insertProfile(103, true, 1)
	s.insertOrder(1, 103, domain.OrderOnTheWay, nil)

	got, err := s.repo.ListAvailable(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1, "offline and fully loaded agents are excluded")
	s.Equal(int64(101), got[0].UserID)
}

func (s *ProfileRepositorySuite) TestGetDashboard() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.insertProfile(101, true, 5)
	s.insertOrder(1, 101, domain.OrderAssigned, nil)
	delivered := now
	s.insertOrder(2, 101, domain.OrderDelivered, &delivered)

	_, err := s.pool.Exec(ctx, `
        INSERT INTO earnings_transactions (reference, delivery_person_id, type, amount, status)
        VALUES ('ERN-1', 101, 'delivery', 3.00, 'completed'),
               ('ERN-2', 101, 'delivery', 4.00, 'completed'),
               ('ERN-3', 101, 'delivery', 9.00, 'pending')
    `)
	s.Require().NoError(err)

	d, err := s.repo.GetDashboard(ctx, 101, now)
	s.Require().NoError(err)
	s.Require().NotNil(d)
	s.Equal(int64(101), d.Profile.UserID)
	s.Equal(1, d.PendingDeliveries)
	s.Equal(1, d.WeekDeliveries)
	s.True(d.CompletedEarnings.Equal(decimal.NewFromFloat(7.00)),
		"pending entries must not count as completed earnings")
}

func (s *ProfileRepositorySuite) TestGetDashboard_MissingProfile() {
	d, err := s.repo.GetDashboard(context.Background(), 9999, time.Now().UTC())
	s.Require().NoError(err)
	s.Nil(d)
}

func TestProfileRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositorySuite))
}
