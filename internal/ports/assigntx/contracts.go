package assigntx

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"campus-delivery/internal/domain"
)

// Repository is the set of storage operations available inside an assignment
// transaction. The order row lock acquired by GetOrderForUpdate serializes
// every concurrent accept attempt for that order.
type Repository interface {
	GetOrderForUpdate(ctx context.Context, orderID int64) (*domain.Order, error)
	UpsertOrder(ctx context.Context, o *domain.Order) error
	AssignOrder(ctx context.Context, orderID, agentID int64) error
	SetOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
	MarkOrderDelivered(ctx context.Context, orderID int64, now time.Time) (bool, error)

	GetAssignmentByOrderID(ctx context.Context, orderID int64) (*domain.Assignment, error)
	GetAssignmentForUpdate(ctx context.Context, id int64) (*domain.Assignment, error)
	InsertAssignment(ctx context.Context, a *domain.Assignment) error
	SetAssignmentStatus(ctx context.Context, id int64, status domain.AssignmentStatus) error
	SetAssignmentAgent(ctx context.Context, id, agentID int64, status domain.AssignmentStatus) error

	GetProfile(ctx context.Context, agentID int64) (*domain.DeliveryProfile, error)
	AddPendingEarnings(ctx context.Context, agentID int64, amount decimal.Decimal) error
	ApplyEarnings(ctx context.Context, agentID int64, amount decimal.Decimal) error

	InsertEarnings(ctx context.Context, t *domain.EarningsTransaction) error
	GetPendingEarningsForUpdate(ctx context.Context, orderID int64) (*domain.EarningsTransaction, error)
	CompleteEarnings(ctx context.Context, id int64) error
	CancelEarnings(ctx context.Context, id int64) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
