package repository

import (
	"context"
	"time"

	"github.com/printeasy/printeasy/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. The order
// record itself is append-only: rows are created and mutated, never deleted.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error)

	// Transition moves the order from one status to another and appends the
	// matching status log entry in a single transaction. The update is a
	// compare-and-swap on the previous status: if another writer got there
	// first the call fails with ErrStatusConflict and nothing is written.
	Transition(ctx context.Context, orderID int64, from, to model.OrderStatus, at time.Time) error

	SetPayment(ctx context.Context, orderID int64, paymentID string, paidAt time.Time) error
	SetPaymentError(ctx context.Context, orderID int64, message string) error
	SetGatewayOrder(ctx context.Context, orderID int64, gatewayOrderID string) error
	SetCancellation(ctx context.Context, orderID int64, reason string, openRefund bool) error
	ProcessRefund(ctx context.Context, orderID int64, transactionID string, at time.Time) error
	AddNote(ctx context.Context, orderID int64, note model.OrderNote) error
}
