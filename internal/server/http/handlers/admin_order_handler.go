package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/printeasy/printeasy/internal/domain/errors"
	"github.com/printeasy/printeasy/internal/domain/model"
	"github.com/printeasy/printeasy/internal/server/http/dto"
)

const defaultAdminListLimit = 100

// AdminOrderHandler manages staff order endpoints.
type AdminOrderHandler struct {
	facade AdminOrderFacade
}

// NewAdminOrderHandler constructs AdminOrderHandler.
func NewAdminOrderHandler(facade AdminOrderFacade) *AdminOrderHandler {
	return &AdminOrderHandler{facade: facade}
}

// List handles GET /api/admin/orders.
func (h *AdminOrderHandler) List(c *gin.Context) {
	status := model.OrderStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.Status(http.StatusBadRequest)
		return
	}

	limit := defaultAdminListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	orders, err := h.facade.AdminOrders(c.Request.Context(), status, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o, true))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/admin/orders/:id.
func (h *AdminOrderHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.AdminOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, true))
}

// UpdateStatus handles POST /api/admin/orders/:id/status.
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), orderID, model.OrderStatus(req.Status), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrStatusConflict):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, true))
}

// AddNote handles POST /api/admin/orders/:id/notes.
func (h *AdminOrderHandler) AddNote(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.AddOrderNote(c.Request.Context(), orderID, req.Text, req.VisibleToCustomer)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrEmptyMessage):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, true))
}

// ProcessRefund handles POST /api/admin/orders/:id/refund.
func (h *AdminOrderHandler) ProcessRefund(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.ProcessRefund(c.Request.Context(), orderID, req.TransactionID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransactionID):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrRefundProcessed):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, true))
}

// PurgeFiles handles POST /api/admin/orders/:id/purge-files.
func (h *AdminOrderHandler) PurgeFiles(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	queued, err := h.facade.PurgeOrderFiles(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrOrderNotFinished):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusAccepted, dto.PurgeResponse{Queued: queued})
}
