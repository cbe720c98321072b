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

// AdminComplaintHandler manages staff complaint endpoints.
type AdminComplaintHandler struct {
	facade AdminComplaintFacade
}

// NewAdminComplaintHandler constructs AdminComplaintHandler.
func NewAdminComplaintHandler(facade AdminComplaintFacade) *AdminComplaintHandler {
	return &AdminComplaintHandler{facade: facade}
}

// List handles GET /api/admin/complaints.
func (h *AdminComplaintHandler) List(c *gin.Context) {
	status := model.ComplaintStatus(c.Query("status"))

	limit := defaultAdminListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	complaints, err := h.facade.AdminComplaints(c.Request.Context(), status, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ComplaintResponse, 0, len(complaints))
	for _, complaint := range complaints {
		response = append(response, toComplaintResponse(complaint))
	}
	c.JSON(http.StatusOK, response)
}

// Respond handles POST /api/admin/complaints/:id/responses.
func (h *AdminComplaintHandler) Respond(c *gin.Context) {
	complaintID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.ComplaintResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	complaint, err := h.facade.StaffRespondToComplaint(c.Request.Context(), complaintID, req.Message)
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
	c.JSON(http.StatusOK, toComplaintResponse(*complaint))
}

// Close handles POST /api/admin/complaints/:id/close.
func (h *AdminComplaintHandler) Close(c *gin.Context) {
	complaintID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	complaint, err := h.facade.CloseComplaint(c.Request.Context(), complaintID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toComplaintResponse(*complaint))
}
