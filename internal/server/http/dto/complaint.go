package dto

import "time"

// ComplaintRequest opens a support ticket against an order.
type ComplaintRequest struct {
	OrderID  int64  `json:"orderId"`
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

// ComplaintResponseRequest appends a message to the complaint thread.
type ComplaintResponseRequest struct {
	Message string `json:"message"`
}

// RatingRequest records the customer's satisfaction score.
type RatingRequest struct {
	Rating int `json:"rating"`
}

// ComplaintMessage is one entry of the complaint thread.
type ComplaintMessage struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	FromStaff bool      `json:"fromStaff"`
}

// ComplaintResponse is the wire form of a complaint.
type ComplaintResponse struct {
	ID        int64              `json:"id"`
	OrderID   int64              `json:"orderId"`
	Message   string             `json:"message"`
	ImageURL  string             `json:"imageUrl,omitempty"`
	Status    string             `json:"status"`
	Responses []ComplaintMessage `json:"responses,omitempty"`
	Rating    int                `json:"rating,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}
