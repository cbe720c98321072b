package handlers

import (
	"context"

	"github.com/printeasy/printeasy/internal/adapter/razorpay"
	"github.com/printeasy/printeasy/internal/domain/model"
	"github.com/printeasy/printeasy/internal/pricing"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, name, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
	User(ctx context.Context, userID int64) (*model.User, error)
}

// CartFacade exposes the draft order operations.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) (*model.Cart, pricing.Totals, error)
	SaveCart(ctx context.Context, userID int64, items []model.LineItem) (*model.Cart, pricing.Totals, error)
	ClearCart(ctx context.Context, userID int64) error
}

// OrderFacade encapsulates customer order operations exposed via HTTP.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64, shipping model.ShippingDetails) (*model.Order, *razorpay.PaymentOptions, error)
	ConfirmPayment(ctx context.Context, userID, orderID int64, paymentID, signature string) (*model.Order, error)
	ReportPaymentFailure(ctx context.Context, userID, orderID int64, message string) error
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, userID, orderID int64) (*model.Order, error)
	CancelOrder(ctx context.Context, userID, orderID int64, reason string) (*model.Order, error)
}

// AdminOrderFacade covers the staff order operations.
type AdminOrderFacade interface {
	AdminOrders(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error)
	AdminOrder(ctx context.Context, orderID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, reason string) (*model.Order, error)
	AddOrderNote(ctx context.Context, orderID int64, text string, visibleToCustomer bool) (*model.Order, error)
	ProcessRefund(ctx context.Context, orderID int64, transactionID string) (*model.Order, error)
	PurgeOrderFiles(ctx context.Context, orderID int64) (int, error)
}

// ComplaintFacade covers the customer complaint operations.
type ComplaintFacade interface {
	CreateComplaint(ctx context.Context, userID, orderID int64, message, imageURL string) (*model.Complaint, error)
	Complaints(ctx context.Context, userID int64) ([]model.Complaint, error)
	Complaint(ctx context.Context, userID, complaintID int64) (*model.Complaint, error)
	RespondToComplaint(ctx context.Context, userID, complaintID int64, message string) (*model.Complaint, error)
	RateComplaint(ctx context.Context, userID, complaintID int64, rating int) (*model.Complaint, error)
}

// AdminComplaintFacade covers the staff complaint operations.
type AdminComplaintFacade interface {
	AdminComplaints(ctx context.Context, status model.ComplaintStatus, limit int) ([]model.Complaint, error)
	StaffRespondToComplaint(ctx context.Context, complaintID int64, message string) (*model.Complaint, error)
	CloseComplaint(ctx context.Context, complaintID int64) (*model.Complaint, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CartFacade
	OrderFacade
	AdminOrderFacade
	ComplaintFacade
	AdminComplaintFacade
}
