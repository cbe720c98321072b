package test

import (
	"context"
	"sync"

	"github.com/printeasy/printeasy/internal/adapter/razorpay"
	"github.com/printeasy/printeasy/internal/domain/model"
	"github.com/printeasy/printeasy/internal/pricing"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
	UserFn         func(context.Context, int64) (*model.User, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, name, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, name, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// User returns the authenticated user record.
func (s AuthFacadeStub) User(ctx context.Context, userID int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, userID)
	}
	return &model.User{ID: userID, Email: "user@example.com"}, nil
}

// CartFacadeStub simulates cart facade interactions.
type CartFacadeStub struct {
	CartFn     func(context.Context, int64) (*model.Cart, pricing.Totals, error)
	SaveCartFn func(context.Context, int64, []model.LineItem) (*model.Cart, pricing.Totals, error)
	ClearFn    func(context.Context, int64) error
}

// Cart returns the configured cart.
func (s CartFacadeStub) Cart(ctx context.Context, userID int64) (*model.Cart, pricing.Totals, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return &model.Cart{UserID: userID}, pricing.Totals{}, nil
}

// SaveCart returns the configured repriced cart.
func (s CartFacadeStub) SaveCart(ctx context.Context, userID int64, items []model.LineItem) (*model.Cart, pricing.Totals, error) {
	if s.SaveCartFn != nil {
		return s.SaveCartFn(ctx, userID, items)
	}
	return &model.Cart{UserID: userID, Items: items}, pricing.Totals{}, nil
}

// ClearCart empties the cart.
func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// OrderFacadeStub simulates customer order facade interactions.
type OrderFacadeStub struct {
	CheckoutFn       func(context.Context, int64, model.ShippingDetails) (*model.Order, *razorpay.PaymentOptions, error)
	ConfirmFn        func(context.Context, int64, int64, string, string) (*model.Order, error)
	ReportFailureFn  func(context.Context, int64, int64, string) error
	OrdersFn         func(context.Context, int64) ([]model.Order, error)
	OrderFn          func(context.Context, int64, int64) (*model.Order, error)
	CancelFn         func(context.Context, int64, int64, string) (*model.Order, error)
	DefaultOrderList []model.Order
}

// Checkout returns a pending order with payment options.
func (s OrderFacadeStub) Checkout(ctx context.Context, userID int64, shipping model.ShippingDetails) (*model.Order, *razorpay.PaymentOptions, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, shipping)
	}
	order := &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending, Shipping: shipping}
	return order, &razorpay.PaymentOptions{KeyID: "key", GatewayOrderID: "order_gw", AmountMinorUnit: 100, Currency: "INR"}, nil
}

// ConfirmPayment marks the order paid.
func (s OrderFacadeStub) ConfirmPayment(ctx context.Context, userID, orderID int64, paymentID, signature string) (*model.Order, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, userID, orderID, paymentID, signature)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusPaid, PaymentID: paymentID}, nil
}

// ReportPaymentFailure records the failure.
func (s OrderFacadeStub) ReportPaymentFailure(ctx context.Context, userID, orderID int64, message string) error {
	if s.ReportFailureFn != nil {
		return s.ReportFailureFn(ctx, userID, orderID, message)
	}
	return nil
}

// Orders lists the user's orders.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return s.DefaultOrderList, nil
}

// Order returns one order.
func (s OrderFacadeStub) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusPaid}, nil
}

// CancelOrder cancels the order.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, userID, orderID int64, reason string) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, userID, orderID, reason)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusCancelled, CancellationReason: reason}, nil
}

// AdminOrderFacadeStub simulates staff order facade interactions.
type AdminOrderFacadeStub struct {
	ListFn         func(context.Context, model.OrderStatus, int) ([]model.Order, error)
	GetFn          func(context.Context, int64) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, string) (*model.Order, error)
	AddNoteFn      func(context.Context, int64, string, bool) (*model.Order, error)
	RefundFn       func(context.Context, int64, string) (*model.Order, error)
	PurgeFn        func(context.Context, int64) (int, error)
}

// AdminOrders lists orders for the staff queue.
func (s AdminOrderFacadeStub) AdminOrders(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, status, limit)
	}
	return nil, nil
}

// AdminOrder returns one order.
func (s AdminOrderFacadeStub) AdminOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPaid}, nil
}

// UpdateOrderStatus applies the transition.
func (s AdminOrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, reason string) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, reason)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// AddOrderNote attaches a note.
func (s AdminOrderFacadeStub) AddOrderNote(ctx context.Context, orderID int64, text string, visibleToCustomer bool) (*model.Order, error) {
	if s.AddNoteFn != nil {
		return s.AddNoteFn(ctx, orderID, text, visibleToCustomer)
	}
	return &model.Order{ID: orderID, Notes: []model.OrderNote{{Text: text, VisibleToCustomer: visibleToCustomer}}}, nil
}

// ProcessRefund settles a refund.
func (s AdminOrderFacadeStub) ProcessRefund(ctx context.Context, orderID int64, transactionID string) (*model.Order, error) {
	if s.RefundFn != nil {
		return s.RefundFn(ctx, orderID, transactionID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusCancelled, Refund: &model.Refund{Status: model.RefundStatusProcessed, TransactionID: transactionID}}, nil
}

// PurgeOrderFiles queues media deletions.
func (s AdminOrderFacadeStub) PurgeOrderFiles(ctx context.Context, orderID int64) (int, error) {
	if s.PurgeFn != nil {
		return s.PurgeFn(ctx, orderID)
	}
	return 0, nil
}

// ComplaintFacadeStub simulates customer complaint facade interactions.
type ComplaintFacadeStub struct {
	CreateFn  func(context.Context, int64, int64, string, string) (*model.Complaint, error)
	ListFn    func(context.Context, int64) ([]model.Complaint, error)
	GetFn     func(context.Context, int64, int64) (*model.Complaint, error)
	RespondFn func(context.Context, int64, int64, string) (*model.Complaint, error)
	RateFn    func(context.Context, int64, int64, int) (*model.Complaint, error)
}

// CreateComplaint opens a ticket.
func (s ComplaintFacadeStub) CreateComplaint(ctx context.Context, userID, orderID int64, message, imageURL string) (*model.Complaint, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, orderID, message, imageURL)
	}
	return &model.Complaint{ID: 1, UserID: userID, OrderID: orderID, Message: message, Status: model.ComplaintStatusOpen}, nil
}

// Complaints lists the user's tickets.
func (s ComplaintFacadeStub) Complaints(ctx context.Context, userID int64) ([]model.Complaint, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

// Complaint returns one ticket.
func (s ComplaintFacadeStub) Complaint(ctx context.Context, userID, complaintID int64) (*model.Complaint, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID, complaintID)
	}
	return &model.Complaint{ID: complaintID, UserID: userID, Status: model.ComplaintStatusOpen}, nil
}

// RespondToComplaint appends a customer message.
func (s ComplaintFacadeStub) RespondToComplaint(ctx context.Context, userID, complaintID int64, message string) (*model.Complaint, error) {
	if s.RespondFn != nil {
		return s.RespondFn(ctx, userID, complaintID, message)
	}
	return &model.Complaint{ID: complaintID, UserID: userID, Status: model.ComplaintStatusOpen}, nil
}

// RateComplaint stores the rating.
func (s ComplaintFacadeStub) RateComplaint(ctx context.Context, userID, complaintID int64, rating int) (*model.Complaint, error) {
	if s.RateFn != nil {
		return s.RateFn(ctx, userID, complaintID, rating)
	}
	return &model.Complaint{ID: complaintID, UserID: userID, Status: model.ComplaintStatusClosed, Rating: rating}, nil
}

// AdminComplaintFacadeStub simulates staff complaint facade interactions.
type AdminComplaintFacadeStub struct {
	ListFn    func(context.Context, model.ComplaintStatus, int) ([]model.Complaint, error)
	RespondFn func(context.Context, int64, string) (*model.Complaint, error)
	CloseFn   func(context.Context, int64) (*model.Complaint, error)
}

// AdminComplaints lists tickets for the staff queue.
func (s AdminComplaintFacadeStub) AdminComplaints(ctx context.Context, status model.ComplaintStatus, limit int) ([]model.Complaint, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, status, limit)
	}
	return nil, nil
}

// StaffRespondToComplaint appends a staff message.
func (s AdminComplaintFacadeStub) StaffRespondToComplaint(ctx context.Context, complaintID int64, message string) (*model.Complaint, error) {
	if s.RespondFn != nil {
		return s.RespondFn(ctx, complaintID, message)
	}
	return &model.Complaint{ID: complaintID, Status: model.ComplaintStatusResponded}, nil
}

// CloseComplaint resolves the ticket.
func (s AdminComplaintFacadeStub) CloseComplaint(ctx context.Context, complaintID int64) (*model.Complaint, error) {
	if s.CloseFn != nil {
		return s.CloseFn(ctx, complaintID)
	}
	return &model.Complaint{ID: complaintID, Status: model.ComplaintStatusClosed}, nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CartFacadeStub
	OrderFacadeStub
	AdminOrderFacadeStub
	ComplaintFacadeStub
	AdminComplaintFacadeStub
}

// CleanupFacadeStub feeds the cleanup worker in tests.
type CleanupFacadeStub struct {
	sync.Mutex

	Batches   [][]model.MediaDeletion
	DestroyFn func(context.Context, string) error

	Destroyed []string
	Finished  []int64
	Failed    map[int64]string
}

// PendingMediaDeletions pops the next configured batch.
func (s *CleanupFacadeStub) PendingMediaDeletions(ctx context.Context, limit int) ([]model.MediaDeletion, error) {
	s.Lock()
	defer s.Unlock()
	if len(s.Batches) == 0 {
		return nil, nil
	}
	batch := s.Batches[0]
	s.Batches = s.Batches[1:]
	return batch, nil
}

// DestroyMedia records the call, delegating to the override when set.
func (s *CleanupFacadeStub) DestroyMedia(ctx context.Context, remoteID string) error {
	if s.DestroyFn != nil {
		if err := s.DestroyFn(ctx, remoteID); err != nil {
			return err
		}
	}
	s.Lock()
	defer s.Unlock()
	s.Destroyed = append(s.Destroyed, remoteID)
	return nil
}

// FinishMediaDeletion records completed queue entries.
func (s *CleanupFacadeStub) FinishMediaDeletion(ctx context.Context, id int64) error {
	s.Lock()
	defer s.Unlock()
	s.Finished = append(s.Finished, id)
	return nil
}

// FailMediaDeletion records failed queue entries.
func (s *CleanupFacadeStub) FailMediaDeletion(ctx context.Context, id int64, message string) error {
	s.Lock()
	defer s.Unlock()
	if s.Failed == nil {
		s.Failed = make(map[int64]string)
	}
	s.Failed[id] = message
	return nil
}
