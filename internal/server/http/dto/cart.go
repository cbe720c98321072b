package dto

import "github.com/printeasy/printeasy/internal/domain/model"

// CartRequest replaces the draft order contents. Client-supplied prices are
// ignored; every item is repriced on the server.
type CartRequest struct {
	Items []model.LineItem `json:"items"`
}

// CartResponse returns the repriced cart.
type CartResponse struct {
	Items       []model.LineItem `json:"items"`
	Subtotal    float64          `json:"subtotal"`
	DeliveryFee float64          `json:"deliveryFee"`
	Total       float64          `json:"total"`
}
