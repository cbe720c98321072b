package usecase

import (
	"context"

	"github.com/printeasy/printeasy/internal/domain/model"
	"github.com/printeasy/printeasy/internal/domain/repository"
	"github.com/printeasy/printeasy/internal/pricing"
)

// CartUseCase manages the server-side draft order.
type CartUseCase struct {
	carts       repository.CartRepository
	deliveryFee float64
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, deliveryFee float64) *CartUseCase {
	return &CartUseCase{carts: carts, deliveryFee: deliveryFee}
}

// repriceItems normalizes customizations and recomputes every item price.
// Prices stored in the cart are never trusted; the engine is the single
// source of truth.
func repriceItems(items []model.LineItem, deliveryFee float64) ([]model.LineItem, pricing.Totals) {
	priced := make([]model.LineItem, len(items))
	for i, item := range items {
		for j, c := range item.Customizations {
			item.Customizations[j] = c.Normalized()
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		item.TotalPrice = pricing.Round2(pricing.ItemPrice(item))
		priced[i] = item
	}
	totals := pricing.OrderTotals(priced, deliveryFee)
	return priced, totals
}

// Get returns the user's cart with freshly computed totals.
func (u *CartUseCase) Get(ctx context.Context, userID int64) (*model.Cart, pricing.Totals, error) {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return nil, pricing.Totals{}, err
	}
	var totals pricing.Totals
	cart.Items, totals = repriceItems(cart.Items, u.deliveryFee)
	return cart, totals, nil
}

// Put replaces the cart contents, repricing every item server-side.
func (u *CartUseCase) Put(ctx context.Context, userID int64, items []model.LineItem) (*model.Cart, pricing.Totals, error) {
	priced, totals := repriceItems(items, u.deliveryFee)
	cart, err := u.carts.Put(ctx, userID, priced)
	if err != nil {
		return nil, pricing.Totals{}, err
	}
	return cart, totals, nil
}

// Clear empties the cart.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}
