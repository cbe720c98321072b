package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printeasy/printeasy/internal/server/http/dto"
)

// CartHandler manages the draft order endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/user/cart.
func (h *CartHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)
	cart, totals, err := h.facade.Cart(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{
		Items:       cart.Items,
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		Total:       totals.Total,
	})
}

// Put handles PUT /api/user/cart.
func (h *CartHandler) Put(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, totals, err := h.facade.SaveCart(c.Request.Context(), userID, req.Items)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{
		Items:       cart.Items,
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		Total:       totals.Total,
	})
}

// Clear handles DELETE /api/user/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	userID := CurrentUserID(c)
	if err := h.facade.ClearCart(c.Request.Context(), userID); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
