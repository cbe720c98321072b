package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/printeasy/printeasy/internal/domain/errors"
	"github.com/printeasy/printeasy/internal/domain/model"
	"github.com/printeasy/printeasy/internal/domain/repository"
)

// FulfillmentUseCase is the staff side of the order lifecycle: moving orders
// through production, annotating them, settling refunds and purging files.
type FulfillmentUseCase struct {
	orders repository.OrderRepository
	media  repository.MediaDeletionRepository
}

// NewFulfillmentUseCase constructs FulfillmentUseCase.
func NewFulfillmentUseCase(orders repository.OrderRepository, media repository.MediaDeletionRepository) *FulfillmentUseCase {
	return &FulfillmentUseCase{orders: orders, media: media}
}

// List returns orders filtered by status. An empty status returns everything.
func (u *FulfillmentUseCase) List(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if status != "" && !status.Valid() {
		return nil, domainErrors.ErrInvalidTransition
	}
	return u.orders.ListByStatus(ctx, status, limit)
}

// Get returns one order with full status log and all notes.
func (u *FulfillmentUseCase) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// UpdateStatus moves an order to a new status. payment_failed is written
// only by the payment flow and cannot be set manually.
func (u *FulfillmentUseCase) UpdateStatus(ctx context.Context, orderID int64, to model.OrderStatus, reason string) (*model.Order, error) {
	if !to.Valid() || to == model.OrderStatusPaymentFailed {
		return nil, domainErrors.ErrInvalidTransition
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(order.Status, to) {
		return nil, domainErrors.ErrInvalidTransition
	}

	if err := u.orders.Transition(ctx, order.ID, order.Status, to, time.Now()); err != nil {
		return nil, err
	}

	if to == model.OrderStatusCancelled {
		if err := u.orders.SetCancellation(ctx, order.ID, reason, order.PaymentID != ""); err != nil {
			return nil, err
		}
	}

	return u.orders.GetByID(ctx, orderID)
}

// AddNote attaches a staff note to an order.
func (u *FulfillmentUseCase) AddNote(ctx context.Context, orderID int64, text string, visibleToCustomer bool) (*model.Order, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainErrors.ErrEmptyMessage
	}

	note := model.OrderNote{
		Text:              text,
		CreatedAt:         time.Now(),
		VisibleToCustomer: visibleToCustomer,
	}
	if err := u.orders.AddNote(ctx, orderID, note); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}

// ProcessRefund marks a pending refund as settled with the bank transaction
// reference. Processed refunds are immutable.
func (u *FulfillmentUseCase) ProcessRefund(ctx context.Context, orderID int64, transactionID string) (*model.Order, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, domainErrors.ErrInvalidTransactionID
	}

	if err := u.orders.ProcessRefund(ctx, orderID, transactionID, time.Now()); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}

// PurgeFiles queues deletion of the uploaded documents of a finished order.
// Only delivered and cancelled orders qualify; files of an order still in
// production must stay available to the print floor.
func (u *FulfillmentUseCase) PurgeFiles(ctx context.Context, orderID int64) (int, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if order.Status != model.OrderStatusDelivered && order.Status != model.OrderStatusCancelled {
		return 0, domainErrors.ErrOrderNotFinished
	}

	var remoteIDs []string
	for _, item := range order.Items {
		for _, f := range item.Files {
			if f.RemoteID != "" {
				remoteIDs = append(remoteIDs, f.RemoteID)
			}
		}
	}
	if len(remoteIDs) == 0 {
		return 0, nil
	}

	if err := u.media.Enqueue(ctx, remoteIDs); err != nil {
		return 0, err
	}
	return len(remoteIDs), nil
}
