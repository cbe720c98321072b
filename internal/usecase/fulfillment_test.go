package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/printeasy/printeasy/internal/domain/errors"
	"github.com/printeasy/printeasy/internal/domain/model"
	testhelpers "github.com/printeasy/printeasy/internal/test"
)

func TestFulfillmentUpdateStatusForward(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders = []model.Order{{ID: 1, UserID: 1, Status: model.OrderStatusPaid}}
	uc := NewFulfillmentUseCase(orders, testhelpers.NewMediaDeletionRepositoryStub())

	order, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusApproved, "")
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if order.Status != model.OrderStatusApproved {
		t.Fatalf("expected approved, got %s", order.Status)
	}
}

func TestFulfillmentUpdateStatusSkipAhead(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders = []model.Order{{ID: 1, UserID: 1, Status: model.OrderStatusPaid}}
	uc := NewFulfillmentUseCase(orders, testhelpers.NewMediaDeletionRepositoryStub())

	order, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusShipped, "")
	if err != nil {
		t.Fatalf("skipping ahead must be allowed: %v", err)
	}
	if order.Status != model.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", order.Status)
	}
}

func TestFulfillmentUpdateStatusBackwardRejected(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders = []model.Order{{ID: 1, UserID: 1, Status: model.OrderStatusShipped}}
	uc := NewFulfillmentUseCase(orders, testhelpers.NewMediaDeletionRepositoryStub())

	if _, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusProcessing, ""); err != domainErrors.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestFulfillmentUpdateStatusPaymentFailedRejected(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders = []model.Order{{ID: 1, UserID: 1, Status: model.OrderStatusPending}}
	uc := NewFulfillmentUseCase(orders, testhelpers.NewMediaDeletionRepositoryStub())

	if _, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusPaymentFailed, ""); err != domainErrors.ErrInvalidTransition {
		t.Fatalf("payment_failed must not be set manually, got %v", err)
	}
}

func TestFulfillmentUpdateStatusCancelPaidOpensRefund(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders = []model.Order{{ID: 1, UserID: 1, Status: model.OrderStatusProcessing, PaymentID: "pay_1"}}
	uc := NewFulfillmentUseCase(orders, testhelpers.NewMediaDeletionRepositoryStub())

	order, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusCancelled, "out of stock")
	if err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
	if order.Refund == nil || order.Refund.Status != model.RefundStatusPending {
		t.Fatalf("expected pending refund, got %+v", order.Refund)
	}
	if order.CancellationReason != "out of stock" {
		t.Fatalf("reason not recorded: %q", order.CancellationReason)
	}
}

func TestFulfillmentAddNote(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders = []model.Order{{ID: 1, UserID: 1, Status: model.OrderStatusPaid}}
	uc := NewFulfillmentUseCase(orders, testhelpers.NewMediaDeletionRepositoryStub())

	order, err := uc.AddNote(context.Background(), 1, "  reprint page 3  ", true)
	if err != nil {
		t.Fatalf("add note returned error: %v", err)
	}
	if len(order.Notes) != 1 || order.Notes[0].Text != "reprint page 3" {
		t.Fatalf("note not stored trimmed: %+v", order.Notes)
	}
	if !order.Notes[0].VisibleToCustomer {
		t.Fatalf("visibility flag lost")
	}

	if _, err := uc.AddNote(context.Background(), 1, "   ", false); err != domainErrors.ErrEmptyMessage {
		t.Fatalf("expected ErrEmptyMessage for blank note, got %v", err)
	}
}

func TestFulfillmentProcessRefund(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders = []model.Order{{
		ID: 1, UserID: 1, Status: model.OrderStatusCancelled,
		Refund: &model.Refund{Status: model.RefundStatusPending},
	}}
	uc := NewFulfillmentUseCase(orders, testhelpers.NewMediaDeletionRepositoryStub())

	ctx := context.Background()
	order, err := uc.ProcessRefund(ctx, 1, "txn_001")
	if err != nil {
		t.Fatalf("process refund returned error: %v", err)
	}
	if order.Refund.Status != model.RefundStatusProcessed || order.Refund.TransactionID != "txn_001" {
		t.Fatalf("refund not settled: %+v", order.Refund)
	}

	if _, err := uc.ProcessRefund(ctx, 1, "txn_002"); err != domainErrors.ErrRefundProcessed {
		t.Fatalf("expected ErrRefundProcessed on second settle, got %v", err)
	}
	if _, err := uc.ProcessRefund(ctx, 1, "  "); err != domainErrors.ErrInvalidTransactionID {
		t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
	}
}

func TestFulfillmentPurgeFiles(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders = []model.Order{{
		ID: 1, UserID: 1, Status: model.OrderStatusDelivered,
		Items: []model.LineItem{{
			Files: []model.FileRef{
				{Name: "a.pdf", RemoteID: "orders/a"},
				{Name: "b.pdf", RemoteID: "orders/b"},
				{Name: "local.pdf"},
			},
		}},
	}}
	media := testhelpers.NewMediaDeletionRepositoryStub()
	uc := NewFulfillmentUseCase(orders, media)

	count, err := uc.PurgeFiles(context.Background(), 1)
	if err != nil {
		t.Fatalf("purge returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 queued deletions, got %d", count)
	}
	if len(media.Queue) != 2 {
		t.Fatalf("queue not populated: %+v", media.Queue)
	}
}

func TestFulfillmentPurgeFilesRejectsActiveOrder(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders = []model.Order{{ID: 1, UserID: 1, Status: model.OrderStatusProcessing}}
	uc := NewFulfillmentUseCase(orders, testhelpers.NewMediaDeletionRepositoryStub())

	if _, err := uc.PurgeFiles(context.Background(), 1); err != domainErrors.ErrOrderNotFinished {
		t.Fatalf("expected ErrOrderNotFinished, got %v", err)
	}
}

func TestFulfillmentListByStatus(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders = []model.Order{
		{ID: 1, Status: model.OrderStatusPaid},
		{ID: 2, Status: model.OrderStatusShipped},
		{ID: 3, Status: model.OrderStatusPaid},
	}
	uc := NewFulfillmentUseCase(orders, testhelpers.NewMediaDeletionRepositoryStub())

	paid, err := uc.List(context.Background(), model.OrderStatusPaid, 10)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(paid) != 2 {
		t.Fatalf("expected 2 paid orders, got %d", len(paid))
	}

	all, err := uc.List(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("list all returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected all orders, got %d", len(all))
	}
}
