package app

import (
	"context"

	"github.com/printeasy/printeasy/internal/adapter/razorpay"
	"github.com/printeasy/printeasy/internal/domain/model"
	"github.com/printeasy/printeasy/internal/domain/repository"
	"github.com/printeasy/printeasy/internal/pricing"
	"github.com/printeasy/printeasy/internal/usecase"
)

// MediaDestroyer removes a stored file from the media host.
type MediaDestroyer interface {
	Destroy(ctx context.Context, remoteID string) error
}

// StorefrontFacade is the single entry point the HTTP layer and the cleanup
// worker talk to.
type StorefrontFacade struct {
	auth        *usecase.AuthUseCase
	carts       *usecase.CartUseCase
	orders      *usecase.OrderUseCase
	fulfillment *usecase.FulfillmentUseCase
	complaints  *usecase.ComplaintUseCase
	media       MediaDestroyer
	deletions   repository.MediaDeletionRepository
}

// NewStorefrontFacade aggregates use cases behind one surface.
func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	carts *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	fulfillment *usecase.FulfillmentUseCase,
	complaints *usecase.ComplaintUseCase,
	media MediaDestroyer,
	deletions repository.MediaDeletionRepository,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:        auth,
		carts:       carts,
		orders:      orders,
		fulfillment: fulfillment,
		complaints:  complaints,
		media:       media,
		deletions:   deletions,
	}
}

func (f *StorefrontFacade) Register(ctx context.Context, email, name, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, name, password)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) User(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *StorefrontFacade) Cart(ctx context.Context, userID int64) (*model.Cart, pricing.Totals, error) {
	return f.carts.Get(ctx, userID)
}

func (f *StorefrontFacade) SaveCart(ctx context.Context, userID int64, items []model.LineItem) (*model.Cart, pricing.Totals, error) {
	return f.carts.Put(ctx, userID, items)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.carts.Clear(ctx, userID)
}

func (f *StorefrontFacade) Checkout(ctx context.Context, userID int64, shipping model.ShippingDetails) (*model.Order, *razorpay.PaymentOptions, error) {
	return f.orders.Checkout(ctx, userID, shipping)
}

func (f *StorefrontFacade) ConfirmPayment(ctx context.Context, userID, orderID int64, paymentID, signature string) (*model.Order, error) {
	return f.orders.ConfirmPayment(ctx, userID, orderID, paymentID, signature)
}

func (f *StorefrontFacade) ReportPaymentFailure(ctx context.Context, userID, orderID int64, message string) error {
	return f.orders.ReportPaymentFailure(ctx, userID, orderID, message)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.GetForUser(ctx, userID, orderID)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, userID, orderID int64, reason string) (*model.Order, error) {
	return f.orders.Cancel(ctx, userID, orderID, reason)
}

func (f *StorefrontFacade) AdminOrders(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	return f.fulfillment.List(ctx, status, limit)
}

func (f *StorefrontFacade) AdminOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.fulfillment.Get(ctx, orderID)
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, reason string) (*model.Order, error) {
	return f.fulfillment.UpdateStatus(ctx, orderID, status, reason)
}

func (f *StorefrontFacade) AddOrderNote(ctx context.Context, orderID int64, text string, visibleToCustomer bool) (*model.Order, error) {
	return f.fulfillment.AddNote(ctx, orderID, text, visibleToCustomer)
}

func (f *StorefrontFacade) ProcessRefund(ctx context.Context, orderID int64, transactionID string) (*model.Order, error) {
	return f.fulfillment.ProcessRefund(ctx, orderID, transactionID)
}

func (f *StorefrontFacade) PurgeOrderFiles(ctx context.Context, orderID int64) (int, error) {
	return f.fulfillment.PurgeFiles(ctx, orderID)
}

func (f *StorefrontFacade) CreateComplaint(ctx context.Context, userID, orderID int64, message, imageURL string) (*model.Complaint, error) {
	return f.complaints.Create(ctx, userID, orderID, message, imageURL)
}

func (f *StorefrontFacade) Complaints(ctx context.Context, userID int64) ([]model.Complaint, error) {
	return f.complaints.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) Complaint(ctx context.Context, userID, complaintID int64) (*model.Complaint, error) {
	return f.complaints.GetForUser(ctx, userID, complaintID)
}

func (f *StorefrontFacade) RespondToComplaint(ctx context.Context, userID, complaintID int64, message string) (*model.Complaint, error) {
	return f.complaints.RespondForUser(ctx, userID, complaintID, message)
}

func (f *StorefrontFacade) RateComplaint(ctx context.Context, userID, complaintID int64, rating int) (*model.Complaint, error) {
	return f.complaints.Rate(ctx, userID, complaintID, rating)
}

func (f *StorefrontFacade) AdminComplaints(ctx context.Context, status model.ComplaintStatus, limit int) ([]model.Complaint, error) {
	return f.complaints.ListByStatus(ctx, status, limit)
}

func (f *StorefrontFacade) StaffRespondToComplaint(ctx context.Context, complaintID int64, message string) (*model.Complaint, error) {
	return f.complaints.Respond(ctx, complaintID, message, true)
}

func (f *StorefrontFacade) CloseComplaint(ctx context.Context, complaintID int64) (*model.Complaint, error) {
	return f.complaints.Close(ctx, complaintID)
}

func (f *StorefrontFacade) PendingMediaDeletions(ctx context.Context, limit int) ([]model.MediaDeletion, error) {
	return f.deletions.SelectBatch(ctx, limit)
}

func (f *StorefrontFacade) DestroyMedia(ctx context.Context, remoteID string) error {
	return f.media.Destroy(ctx, remoteID)
}

func (f *StorefrontFacade) FinishMediaDeletion(ctx context.Context, id int64) error {
	return f.deletions.MarkDone(ctx, id)
}

func (f *StorefrontFacade) FailMediaDeletion(ctx context.Context, id int64, message string) error {
	return f.deletions.MarkFailed(ctx, id, message)
}
