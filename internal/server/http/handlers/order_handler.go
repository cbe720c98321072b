package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/printeasy/printeasy/internal/domain/errors"
	"github.com/printeasy/printeasy/internal/server/http/dto"
)

// OrderHandler manages customer order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/user/checkout.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, payment, err := h.facade.Checkout(c.Request.Context(), userID, req.Shipping)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrBelowMinimum):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Order: toOrderResponse(*order, false),
		Payment: dto.PaymentOptions{
			Key:      payment.KeyID,
			OrderID:  payment.GatewayOrderID,
			Amount:   payment.AmountMinorUnit,
			Currency: payment.Currency,
		},
	})
}

// ConfirmPayment handles POST /api/user/orders/:id/payment.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.ConfirmPayment(c.Request.Context(), userID, orderID, req.PaymentID, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidSignature):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrStatusConflict):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order, false))
}

// ReportPaymentFailure handles POST /api/user/orders/:id/payment/failure.
func (h *OrderHandler) ReportPaymentFailure(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.PaymentFailureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ReportPaymentFailure(c.Request.Context(), userID, orderID, req.Error); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrStatusConflict):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o, false))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/user/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Order(c.Request.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, false))
}

// Cancel handles POST /api/user/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CancelOrder(c.Request.Context(), userID, orderID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrStatusConflict):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, false))
}
