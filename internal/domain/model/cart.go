package model

import "time"

// Cart is the server-side draft order a user assembles before checkout.
type Cart struct {
	UserID    int64
	Items     []LineItem
	UpdatedAt time.Time
}
