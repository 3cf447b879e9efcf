package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"campus-delivery/internal/domain"
	"campus-delivery/internal/ports/assigntx"
)

const assignmentColumns = `id, order_id, delivery_person_id, score, distance_km,
       estimated_at, created_at, expires_at, status`

// AssignmentRepo is the assignment ledger: one offer row per order, never deleted.
type AssignmentRepo struct {
	db *pgxpool.Pool
}

// NewAssignmentRepo creates a new AssignmentRepo.
func NewAssignmentRepo(db *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *AssignmentRepo) WithTx(ctx context.Context, fn func(tx assigntx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// roll back on panic before re-raising
	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// ExpireStale flips pending/assigned offers past their deadline to expired.
// Runs outside the accept critical section; accepted offers are untouched.
func (r *AssignmentRepo) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	cmd, err := r.db.Exec(ctx, `
        UPDATE assignments
        SET status = $1, updated_at = now()
        WHERE status IN ($2, $3)
          AND expires_at < $4
    `, string(domain.AssignmentExpired), string(domain.AssignmentPending),
		string(domain.AssignmentAssigned), now)
	if err != nil {
		return 0, fmt.Errorf("expire stale assignments: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ assigntx.Repository = (*TxRepo)(nil)

// GetOrderForUpdate locks the order row for the rest of the transaction.
// Every concurrent accept for the same order blocks here until commit.
func (r *TxRepo) GetOrderForUpdate(ctx context.Context, orderID int64) (*domain.Order, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE id = $1
        FOR UPDATE
    `, orderID)

	o, err := scanOrder(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d for update: %w", orderID, err)
	}
	return o, nil
}

// UpsertOrder writes the delivery view of an order received from the ordering
// subsystem, keeping distance and fee from the latest computation.
func (r *TxRepo) UpsertOrder(ctx context.Context, o *domain.Order) error {
	var dropLat, dropLng *float64
	if o.DropOff != nil {
		dropLat, dropLng = &o.DropOff.Lat, &o.DropOff.Lng
	}
	_, err := r.tx.Exec(ctx, `
        INSERT INTO orders (id, reference, customer_id, total_price, status,
                            delivery_address, drop_lat, drop_lng, distance_km, delivery_fee, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (id) DO UPDATE
        SET total_price = EXCLUDED.total_price,
            status = EXCLUDED.status,
            delivery_address = EXCLUDED.delivery_address,
            drop_lat = EXCLUDED.drop_lat,
            drop_lng = EXCLUDED.drop_lng,
            distance_km = EXCLUDED.distance_km,
            delivery_fee = EXCLUDED.delivery_fee,
            updated_at = now()
    `, o.ID, o.Reference, o.CustomerID, o.TotalPrice, string(o.Status),
		o.DeliveryAddr, dropLat, dropLng, o.DistanceKm, o.DeliveryFee, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert order %d: %w", o.ID, err)
	}
	return nil
}

// AssignOrder sets the winner on the order row.
func (r *TxRepo) AssignOrder(ctx context.Context, orderID, agentID int64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET delivery_person_id = $2, status = $3, updated_at = now()
        WHERE id = $1
    `, orderID, agentID, string(domain.OrderAssigned))
	if err != nil {
		return fmt.Errorf("assign order %d: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", orderID)
	}
	return nil
}

// SetOrderStatus - update order status.
func (r *TxRepo) SetOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, orderID, string(status))
	if err != nil {
		return fmt.Errorf("set order %d status: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", orderID)
	}
	return nil
}

// MarkOrderDelivered sets delivered_at exactly once. Returns false when the
// timestamp was already set, which callers use as the idempotency guard.
func (r *TxRepo) MarkOrderDelivered(ctx context.Context, orderID int64, now time.Time) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET status = $2, delivered_at = $3, updated_at = now()
        WHERE id = $1 AND delivered_at IS NULL
    `, orderID, string(domain.OrderDelivered), now)
	if err != nil {
		return false, fmt.Errorf("mark order %d delivered: %w", orderID, err)
	}
	return ct.RowsAffected() > 0, nil
}

func scanAssignment(row orderRow) (*domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(&a.ID, &a.OrderID, &a.DeliveryAgent, &a.Score, &a.DistanceKm,
		&a.EstimatedAt, &a.CreatedAt, &a.ExpiresAt, &a.Status)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAssignmentByOrderID - get assignment by order ID.
func (r *TxRepo) GetAssignmentByOrderID(ctx context.Context, orderID int64) (*domain.Assignment, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT `+assignmentColumns+`
        FROM assignments
        WHERE order_id = $1
    `, orderID)

	a, err := scanAssignment(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment by order %d: %w", orderID, err)
	}
	return a, nil
}

// GetAssignmentForUpdate locks an assignment row by its ID for the simple claim path.
func (r *TxRepo) GetAssignmentForUpdate(ctx context.Context, id int64) (*domain.Assignment, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT `+assignmentColumns+`
        FROM assignments
        WHERE id = $1
        FOR UPDATE
    `, id)

	a, err := scanAssignment(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment %d for update: %w", id, err)
	}
	return a, nil
}

// InsertAssignment - insert a new assignment offer. The UNIQUE(order_id)
// constraint enforces at most one offer per order.
func (r *TxRepo) InsertAssignment(ctx context.Context, a *domain.Assignment) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO assignments (order_id, delivery_person_id, score, distance_km,
                                 estimated_at, created_at, expires_at, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `, a.OrderID, a.DeliveryAgent, a.Score, a.DistanceKm,
		a.EstimatedAt, a.CreatedAt, a.ExpiresAt, string(a.Status)).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert assignment for order %d: %w", a.OrderID, err)
	}
	return nil
}

// SetAssignmentStatus - update assignment status.
func (r *TxRepo) SetAssignmentStatus(ctx context.Context, id int64, status domain.AssignmentStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE assignments
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, id, string(status))
	if err != nil {
		return fmt.Errorf("set assignment %d status: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("assignment %d not found", id)
	}
	return nil
}

// SetAssignmentAgent - record the accepting agent together with the status flip.
func (r *TxRepo) SetAssignmentAgent(ctx context.Context, id, agentID int64, status domain.AssignmentStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE assignments
        SET delivery_person_id = $2, status = $3, updated_at = now()
        WHERE id = $1
    `, id, agentID, string(status))
	if err != nil {
		return fmt.Errorf("set assignment %d agent: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("assignment %d not found", id)
	}
	return nil
}

// GetProfile - fetch the delivery profile of an agent inside the transaction.
func (r *TxRepo) GetProfile(ctx context.Context, agentID int64) (*domain.DeliveryProfile, error) {
	row := r.tx.QueryRow(ctx, profileQuery+` WHERE p.user_id = $1`, agentID)
	p, err := scanProfile(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile %d: %w", agentID, err)
	}
	return p, nil
}

// AddPendingEarnings accrues an accepted delivery fee as pending balance.
func (r *TxRepo) AddPendingEarnings(ctx context.Context, agentID int64, amount decimal.Decimal) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery_profiles
        SET pending_earnings = pending_earnings + $2,
            updated_at       = now()
        WHERE user_id = $1
    `, agentID, amount)
	if err != nil {
		return fmt.Errorf("add pending earnings to profile %d: %w", agentID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("profile %d not found", agentID)
	}
	return nil
}

// ApplyEarnings moves a settled amount from pending to available and bumps the
// delivered counter. Runs in the same transaction as the ledger flip.
func (r *TxRepo) ApplyEarnings(ctx context.Context, agentID int64, amount decimal.Decimal) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery_profiles
        SET total_earnings    = total_earnings + $2,
            pending_earnings  = pending_earnings - $2,
            available_balance = available_balance + $2,
            total_deliveries  = total_deliveries + 1,
            updated_at        = now()
        WHERE user_id = $1
    `, agentID, amount)
	if err != nil {
		return fmt.Errorf("apply earnings to profile %d: %w", agentID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("profile %d not found", agentID)
	}
	return nil
}

// InsertEarnings - insert a new earnings ledger entry.
func (r *TxRepo) InsertEarnings(ctx context.Context, t *domain.EarningsTransaction) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO earnings_transactions (reference, delivery_person_id, type, amount,
                                           status, description, order_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `, t.Reference, t.DeliveryAgent, string(t.Type), t.Amount,
		string(t.Status), t.Description, t.OrderID, t.CreatedAt).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert earnings for agent %d: %w", t.DeliveryAgent, err)
	}
	return nil
}

// GetPendingEarningsForUpdate locks the pending delivery ledger entry for an order.
func (r *TxRepo) GetPendingEarningsForUpdate(ctx context.Context, orderID int64) (*domain.EarningsTransaction, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT id, reference, delivery_person_id, type, amount, status, description, order_id, created_at
        FROM earnings_transactions
        WHERE order_id = $1 AND type = $2 AND status = $3
        FOR UPDATE
    `, orderID, string(domain.EarningsDelivery), string(domain.EarningsPending))

	var t domain.EarningsTransaction
	err := row.Scan(&t.ID, &t.Reference, &t.DeliveryAgent, &t.Type, &t.Amount,
		&t.Status, &t.Description, &t.OrderID, &t.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending earnings for order %d: %w", orderID, err)
	}
	return &t, nil
}

// CompleteEarnings - flip a ledger entry to completed.
func (r *TxRepo) CompleteEarnings(ctx context.Context, id int64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE earnings_transactions
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, id, string(domain.EarningsCompleted))
	if err != nil {
		return fmt.Errorf("complete earnings %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("earnings transaction %d not found", id)
	}
	return nil
}

// CancelEarnings - void a ledger entry for a cancelled order.
func (r *TxRepo) CancelEarnings(ctx context.Context, id int64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE earnings_transactions
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, id, string(domain.EarningsCancelled))
	if err != nil {
		return fmt.Errorf("cancel earnings %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("earnings transaction %d not found", id)
	}
	return nil
}
