package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"campus-delivery/internal/domain"
)

// EarningsRepo reads the earnings ledger outside transactions.
type EarningsRepo struct{ db *pgxpool.Pool }

// NewEarningsRepo creates a new EarningsRepo.
func NewEarningsRepo(db *pgxpool.Pool) *EarningsRepo { return &EarningsRepo{db: db} }

// ListByAgent returns ledger entries for an agent, newest first.
func (r *EarningsRepo) ListByAgent(ctx context.Context, agentID int64, limit int) ([]domain.EarningsTransaction, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx, `
        SELECT id, reference, delivery_person_id, type, amount, status, description, order_id, created_at
        FROM earnings_transactions
        WHERE delivery_person_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `, agentID, limit)
	if err != nil {
		return nil, fmt.Errorf("list earnings for agent %d: %w", agentID, err)
	}
	defer rows.Close()

	out := make([]domain.EarningsTransaction, 0, limit)
	for rows.Next() {
		var t domain.EarningsTransaction
		if err := rows.Scan(&t.ID, &t.Reference, &t.DeliveryAgent, &t.Type, &t.Amount,
			&t.Status, &t.Description, &t.OrderID, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
