package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/printeasy/printeasy/internal/adapter/razorpay"
	domainErrors "github.com/printeasy/printeasy/internal/domain/errors"
	"github.com/printeasy/printeasy/internal/domain/model"
	"github.com/printeasy/printeasy/internal/domain/repository"
)

// OrderUseCase drives the customer side of the order lifecycle: checkout,
// payment confirmation and cancellation.
type OrderUseCase struct {
	orders      repository.OrderRepository
	carts       repository.CartRepository
	gateway     razorpay.Client
	deliveryFee float64
	minSubtotal float64
	currency    string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	gateway razorpay.Client,
	deliveryFee, minSubtotal float64,
	currency string,
) *OrderUseCase {
	return &OrderUseCase{
		orders:      orders,
		carts:       carts,
		gateway:     gateway,
		deliveryFee: deliveryFee,
		minSubtotal: minSubtotal,
		currency:    currency,
	}
}

// Checkout turns the user's cart into a pending order and registers it with
// the payment gateway. The cart is cleared only after both succeed, so a
// gateway failure leaves the cart intact for a retry.
func (u *OrderUseCase) Checkout(ctx context.Context, userID int64, shipping model.ShippingDetails) (*model.Order, *razorpay.PaymentOptions, error) {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if len(cart.Items) == 0 {
		return nil, nil, domainErrors.ErrEmptyCart
	}

	items, totals := repriceItems(cart.Items, u.deliveryFee)
	if u.minSubtotal > 0 && totals.Subtotal < u.minSubtotal {
		return nil, nil, domainErrors.ErrBelowMinimum
	}

	order, err := u.orders.Create(ctx, &model.Order{
		UserID:      userID,
		Items:       items,
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		TotalAmount: totals.Total,
		Status:      model.OrderStatusPending,
		Shipping:    shipping,
	})
	if err != nil {
		return nil, nil, err
	}

	amount := int64(math.Round(order.TotalAmount * 100))
	receipt := fmt.Sprintf("order_%d_%s", order.ID, uuid.NewString()[:8])
	options, err := u.gateway.CreateOrder(ctx, amount, u.currency, receipt)
	if err != nil {
		return nil, nil, err
	}

	if err := u.orders.SetGatewayOrder(ctx, order.ID, options.GatewayOrderID); err != nil {
		return nil, nil, err
	}
	order.GatewayOrderID = options.GatewayOrderID

	if err := u.carts.Clear(ctx, userID); err != nil {
		return nil, nil, err
	}

	return order, options, nil
}

// ConfirmPayment validates the gateway callback signature and moves the
// order from pending to paid.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, userID, orderID int64, paymentID, signature string) (*model.Order, error) {
	order, err := u.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !u.gateway.VerifySignature(order.GatewayOrderID, paymentID, signature) {
		return nil, domainErrors.ErrInvalidSignature
	}

	now := time.Now()
	if err := u.orders.Transition(ctx, order.ID, model.OrderStatusPending, model.OrderStatusPaid, now); err != nil {
		return nil, err
	}
	if err := u.orders.SetPayment(ctx, order.ID, paymentID, now); err != nil {
		return nil, err
	}

	return u.orders.GetByID(ctx, order.ID)
}

// ReportPaymentFailure records a failed gateway payment attempt.
func (u *OrderUseCase) ReportPaymentFailure(ctx context.Context, userID, orderID int64, message string) error {
	order, err := u.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return err
	}

	if err := u.orders.Transition(ctx, order.ID, model.OrderStatusPending, model.OrderStatusPaymentFailed, time.Now()); err != nil {
		return err
	}
	return u.orders.SetPaymentError(ctx, order.ID, message)
}

// ListByUser returns all orders placed by the user, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Notes = customerNotes(orders[i].Notes)
	}
	return orders, nil
}

// GetForUser returns one order if it belongs to the user. Internal staff
// notes are filtered out.
func (u *OrderUseCase) GetForUser(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	order.Notes = customerNotes(order.Notes)
	return order, nil
}

// Cancel moves an order to cancelled on the customer's request. A refund
// record is opened when the order was already paid.
func (u *OrderUseCase) Cancel(ctx context.Context, userID, orderID int64, reason string) (*model.Order, error) {
	order, err := u.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(order.Status, model.OrderStatusCancelled) {
		return nil, domainErrors.ErrInvalidTransition
	}

	if err := u.orders.Transition(ctx, order.ID, order.Status, model.OrderStatusCancelled, time.Now()); err != nil {
		return nil, err
	}
	if err := u.orders.SetCancellation(ctx, order.ID, reason, order.PaymentID != ""); err != nil {
		return nil, err
	}

	return u.orders.GetByID(ctx, order.ID)
}

func (u *OrderUseCase) ownedOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

func customerNotes(notes []model.OrderNote) []model.OrderNote {
	if len(notes) == 0 {
		return notes
	}
	visible := make([]model.OrderNote, 0, len(notes))
	for _, n := range notes {
		if n.VisibleToCustomer {
			visible = append(visible, n)
		}
	}
	return visible
}
