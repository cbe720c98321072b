package usecase

import (
	"go.uber.org/fx"

	"github.com/printeasy/printeasy/internal/adapter/razorpay"
	"github.com/printeasy/printeasy/internal/config"
	"github.com/printeasy/printeasy/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newCartUseCase,
	newOrderUseCase,
	NewFulfillmentUseCase,
	NewComplaintUseCase,
)

type cartParams struct {
	fx.In

	Carts  repository.CartRepository
	Config *config.Config
}

func newCartUseCase(p cartParams) *CartUseCase {
	return NewCartUseCase(p.Carts, p.Config.DeliveryFee)
}

type orderParams struct {
	fx.In

	Orders  repository.OrderRepository
	Carts   repository.CartRepository
	Gateway razorpay.Client
	Config  *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Carts, p.Gateway, p.Config.DeliveryFee, p.Config.MinOrderSubtotal, p.Config.Currency)
}
