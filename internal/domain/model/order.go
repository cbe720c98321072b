package model

import "time"

// FileRef points to an uploaded document kept by the media host.
type FileRef struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	RemoteID  string `json:"remoteId"`
	PageCount int    `json:"pageCount"`
}

// LineItem is one print job: uploaded files with index-aligned customizations.
type LineItem struct {
	Files          []FileRef       `json:"files"`
	Customizations []Customization `json:"customizations"`
	Quantity       int             `json:"quantity"`
	TotalPrice     float64         `json:"totalPrice"`
}

// ShippingDetails holds delivery contact information captured at checkout.
type ShippingDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// StatusLogEntry is one append-only record of a status transition.
type StatusLogEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// OrderNote is a staff annotation, optionally visible to the customer.
type OrderNote struct {
	Text              string    `json:"text"`
	CreatedAt         time.Time `json:"createdAt"`
	VisibleToCustomer bool      `json:"visibleToCustomer"`
}

// RefundStatus tracks refund progress for cancelled paid orders.
type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusProcessed RefundStatus = "processed"
)

// Refund is the refund sub-record attached to a cancelled order.
// Once processed it is immutable.
type Refund struct {
	Status        RefundStatus `json:"status"`
	TransactionID string       `json:"transactionId,omitempty"`
	ProcessedAt   *time.Time   `json:"processedAt,omitempty"`
}

// Order is the central purchase record. Orders are never deleted, only
// appended to.
type Order struct {
	ID                 int64
	UserID             int64
	Items              []LineItem
	Subtotal           float64
	DeliveryFee        float64
	TotalAmount        float64
	Status             OrderStatus
	Shipping           ShippingDetails
	GatewayOrderID     string
	PaymentID          string
	PaymentTime        *time.Time
	PaymentError       string
	CancellationReason string
	Refund             *Refund
	StatusLog          []StatusLogEntry
	Notes              []OrderNote
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
