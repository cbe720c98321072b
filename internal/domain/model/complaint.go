package model

import "time"

// ComplaintStatus describes support ticket lifecycle.
type ComplaintStatus string

const (
	ComplaintStatusOpen      ComplaintStatus = "open"
	ComplaintStatusResponded ComplaintStatus = "responded"
	ComplaintStatusClosed    ComplaintStatus = "closed"
	ComplaintStatusReopened  ComplaintStatus = "reopened"
)

// ComplaintResponse is one message in a complaint thread.
type ComplaintResponse struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	FromStaff bool      `json:"fromStaff"`
}

// Complaint is a support ticket tied to an order. Rating may be set once,
// only while the complaint is closed.
type Complaint struct {
	ID        int64
	UserID    int64
	OrderID   int64
	Message   string
	ImageURL  string
	Status    ComplaintStatus
	Responses []ComplaintResponse
	Rating    int
	CreatedAt time.Time
}
