package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"campus-delivery/internal/domain"
)

const orderColumns = `id, reference, customer_id, delivery_person_id, total_price, status,
       delivery_address, drop_lat, drop_lng, distance_km, delivery_fee, created_at, delivered_at`

// OrderRepo reads the delivery view of orders.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

type orderRow interface {
	Scan(dest ...any) error
}

func scanOrder(row orderRow) (*domain.Order, error) {
	var (
		o       domain.Order
		dropLat *float64
		dropLng *float64
	)
	err := row.Scan(&o.ID, &o.Reference, &o.CustomerID, &o.DeliveryAgent, &o.TotalPrice, &o.Status,
		&o.DeliveryAddr, &dropLat, &dropLng, &o.DistanceKm, &o.DeliveryFee, &o.CreatedAt, &o.DeliveredAt)
	if err != nil {
		return nil, err
	}
	if dropLat != nil && dropLng != nil {
		o.DropOff = &domain.Coordinate{Lat: *dropLat, Lng: *dropLng}
	}
	return &o, nil
}

// Get - returns an order by its ID.
func (r *OrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

// ListAccepting returns orders still open for the delivery pool, oldest first.
func (r *OrderRepo) ListAccepting(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE status IN ($1, $2) AND delivery_person_id IS NULL
        ORDER BY created_at ASC
        LIMIT $3
    `, string(domain.OrderPlaced), string(domain.OrderAccepted), limit)
	if err != nil {
		return nil, fmt.Errorf("list accepting orders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0, limit)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}
