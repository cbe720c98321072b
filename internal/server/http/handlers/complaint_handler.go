package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/printeasy/printeasy/internal/domain/errors"
	"github.com/printeasy/printeasy/internal/server/http/dto"
)

// ComplaintHandler manages customer complaint endpoints.
type ComplaintHandler struct {
	facade ComplaintFacade
}

// NewComplaintHandler constructs ComplaintHandler.
func NewComplaintHandler(facade ComplaintFacade) *ComplaintHandler {
	return &ComplaintHandler{facade: facade}
}

// Create handles POST /api/user/complaints.
func (h *ComplaintHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	complaint, err := h.facade.CreateComplaint(c.Request.Context(), userID, req.OrderID, req.Message, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyMessage):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toComplaintResponse(*complaint))
}

// List handles GET /api/user/complaints.
func (h *ComplaintHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	complaints, err := h.facade.Complaints(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(complaints) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.ComplaintResponse, 0, len(complaints))
	for _, complaint := range complaints {
		response = append(response, toComplaintResponse(complaint))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/user/complaints/:id.
func (h *ComplaintHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)
	complaintID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	complaint, err := h.facade.Complaint(c.Request.Context(), userID, complaintID)
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

// Respond handles POST /api/user/complaints/:id/responses.
func (h *ComplaintHandler) Respond(c *gin.Context) {
	userID := CurrentUserID(c)
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

	complaint, err := h.facade.RespondToComplaint(c.Request.Context(), userID, complaintID, req.Message)
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

// Rate handles POST /api/user/complaints/:id/rating.
func (h *ComplaintHandler) Rate(c *gin.Context) {
	userID := CurrentUserID(c)
	complaintID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	complaint, err := h.facade.RateComplaint(c.Request.Context(), userID, complaintID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidRating):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrRatingNotAllowed):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toComplaintResponse(*complaint))
}
