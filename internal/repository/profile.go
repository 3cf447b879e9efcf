package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"campus-delivery/internal/domain"
)

// profileQuery joins the computed active load onto the profile row. Active
// load counts orders currently in the agent's hands.
const profileQuery = `
    SELECT p.user_id, p.phone, p.online, p.max_concurrent_load,
           p.total_earnings, p.pending_earnings, p.available_balance,
           p.average_rating, p.total_deliveries, p.lat, p.lng,
           (SELECT COUNT(*) FROM orders o
            WHERE o.delivery_person_id = p.user_id
              AND o.status IN ('assigned', 'in_progress', 'on_the_way')) AS current_load
    FROM delivery_profiles p`

// ProfileRepo represents delivery profile repository.
type ProfileRepo struct{ db *pgxpool.Pool }

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo { return &ProfileRepo{db: db} }

func scanProfile(row orderRow) (*domain.DeliveryProfile, error) {
	var (
		p        domain.DeliveryProfile
		lat, lng *float64
	)
	err := row.Scan(&p.UserID, &p.Phone, &p.Online, &p.MaxConcurrentLoad,
		&p.TotalEarnings, &p.PendingEarnings, &p.AvailableBalance,
		&p.AverageRating, &p.TotalDeliveries, &lat, &lng, &p.CurrentLoad)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		p.Location = &domain.Coordinate{Lat: *lat, Lng: *lng}
	}
	return &p, nil
}

// Get - returns a delivery profile by agent ID.
func (r *ProfileRepo) Get(ctx context.Context, agentID int64) (*domain.DeliveryProfile, error) {
	row := r.db.QueryRow(ctx, profileQuery+` WHERE p.user_id = $1`, agentID)
	p, err := scanProfile(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile %d: %w", agentID, err)
	}
	return p, nil
}

// ListAvailable returns agents that are online and below their concurrent load
// cap, the broadcast fan-out set.
func (r *ProfileRepo) ListAvailable(ctx context.Context) ([]domain.DeliveryProfile, error) {
	rows, err := r.db.Query(ctx, profileQuery+`
        WHERE p.online
        ORDER BY p.user_id`)
	if err != nil {
		return nil, fmt.Errorf("list available profiles: %w", err)
	}
	defer rows.Close()

	var out []domain.DeliveryProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		if p.IsAvailable() {
			out = append(out, *p)
		}
	}
	return out, rows.Err()
}

// ToggleOnline flips the online flag and returns the new state. A missing
// profile is reported as (nil, nil).
func (r *ProfileRepo) ToggleOnline(ctx context.Context, agentID int64) (*bool, error) {
	var online bool
	err := r.db.QueryRow(ctx, `
        UPDATE delivery_profiles
        SET online = NOT online, updated_at = now()
        WHERE user_id = $1
        RETURNING online
    `, agentID).Scan(&online)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("toggle online for profile %d: %w", agentID, err)
	}
	return &online, nil
}

// Dashboard aggregates per-agent operational counters for the dashboard view.
type Dashboard struct {
	Profile           domain.DeliveryProfile
	TodayDeliveries   int
	PendingDeliveries int
	WeekDeliveries    int
	CompletedEarnings decimal.Decimal
}

// GetDashboard - returns aggregated dashboard counters for an agent.
func (r *ProfileRepo) GetDashboard(ctx context.Context, agentID int64, now time.Time) (*Dashboard, error) {
	p, err := r.Get(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	d := Dashboard{Profile: *p}

	today := now.Truncate(24 * time.Hour)
	weekStart := today.AddDate(0, 0, -int((now.Weekday()+6)%7))

	err = r.db.QueryRow(ctx, `
        SELECT
            COUNT(*) FILTER (WHERE o.created_at >= $2),
            COUNT(*) FILTER (WHERE o.status IN ('assigned', 'in_progress', 'on_the_way')),
            COUNT(*) FILTER (WHERE o.delivered_at >= $3)
        FROM orders o
        WHERE o.delivery_person_id = $1
    `, agentID, today, weekStart).Scan(&d.TodayDeliveries, &d.PendingDeliveries, &d.WeekDeliveries)
	if err != nil {
		return nil, fmt.Errorf("dashboard counters for %d: %w", agentID, err)
	}

	err = r.db.QueryRow(ctx, `
        SELECT COALESCE(SUM(amount), 0)
        FROM earnings_transactions
        WHERE delivery_person_id = $1 AND status = $2
    `, agentID, string(domain.EarningsCompleted)).Scan(&d.CompletedEarnings)
	if err != nil {
		return nil, fmt.Errorf("dashboard earnings for %d: %w", agentID, err)
	}

	return &d, nil
}
