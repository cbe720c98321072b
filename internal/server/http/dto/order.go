package dto

import (
	"time"

	"github.com/printeasy/printeasy/internal/domain/model"
)

// CheckoutRequest carries the shipping details for a new order.
type CheckoutRequest struct {
	Shipping model.ShippingDetails `json:"shipping"`
}

// CheckoutResponse returns the created order together with everything the
// client needs to open the gateway checkout.
type CheckoutResponse struct {
	Order   OrderResponse  `json:"order"`
	Payment PaymentOptions `json:"payment"`
}

// PaymentOptions mirrors the gateway checkout parameters.
type PaymentOptions struct {
	Key      string `json:"key"`
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentCallbackRequest is the gateway success callback payload.
type PaymentCallbackRequest struct {
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// PaymentFailureRequest records a failed payment attempt.
type PaymentFailureRequest struct {
	Error string `json:"error"`
}

// CancelRequest carries the optional cancellation reason.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// StatusUpdateRequest moves an order to a new fulfillment status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// NoteRequest attaches a staff note to an order.
type NoteRequest struct {
	Text              string `json:"text"`
	VisibleToCustomer bool   `json:"visibleToCustomer"`
}

// RefundRequest settles a pending refund.
type RefundRequest struct {
	TransactionID string `json:"transactionId"`
}

// PurgeResponse reports how many files were queued for deletion.
type PurgeResponse struct {
	Queued int `json:"queued"`
}

// StatusLogEntry is one entry of the order's status history.
type StatusLogEntry struct {
	Status    string    `json:"status"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderNote is a staff annotation on an order.
type OrderNote struct {
	Text              string    `json:"text"`
	CreatedAt         time.Time `json:"createdAt"`
	VisibleToCustomer bool      `json:"visibleToCustomer,omitempty"`
}

// RefundInfo describes refund progress for a cancelled order.
type RefundInfo struct {
	Status        string     `json:"status"`
	TransactionID string     `json:"transactionId,omitempty"`
	ProcessedAt   *time.Time `json:"processedAt,omitempty"`
}

// OrderResponse is the wire form of an order.
type OrderResponse struct {
	ID                 int64                 `json:"id"`
	Items              []model.LineItem      `json:"items"`
	Subtotal           float64               `json:"subtotal"`
	DeliveryFee        float64               `json:"deliveryFee"`
	TotalAmount        float64               `json:"totalAmount"`
	Status             string                `json:"status"`
	StatusLabel        string                `json:"statusLabel"`
	NextStatuses       []string              `json:"nextStatuses,omitempty"`
	Shipping           model.ShippingDetails `json:"shipping"`
	PaymentID          string                `json:"paymentId,omitempty"`
	PaymentTime        *time.Time            `json:"paymentTime,omitempty"`
	PaymentError       string                `json:"paymentError,omitempty"`
	CancellationReason string                `json:"cancellationReason,omitempty"`
	Refund             *RefundInfo           `json:"refund,omitempty"`
	StatusLog          []StatusLogEntry      `json:"statusLog,omitempty"`
	Notes              []OrderNote           `json:"notes,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
}
