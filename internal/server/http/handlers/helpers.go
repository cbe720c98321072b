package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/printeasy/printeasy/internal/domain/model"
	"github.com/printeasy/printeasy/internal/server/http/dto"
	"github.com/printeasy/printeasy/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toOrderResponse(order model.Order, withNextStatuses bool) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:                 order.ID,
		Items:              order.Items,
		Subtotal:           order.Subtotal,
		DeliveryFee:        order.DeliveryFee,
		TotalAmount:        order.TotalAmount,
		Status:             string(order.Status),
		StatusLabel:        order.Status.Label(),
		Shipping:           order.Shipping,
		PaymentID:          order.PaymentID,
		PaymentTime:        order.PaymentTime,
		PaymentError:       order.PaymentError,
		CancellationReason: order.CancellationReason,
		CreatedAt:          order.CreatedAt,
	}

	if withNextStatuses {
		next := model.NextStatuses(order.Status)
		resp.NextStatuses = make([]string, 0, len(next))
		for _, s := range next {
			resp.NextStatuses = append(resp.NextStatuses, string(s))
		}
	}

	if order.Refund != nil {
		resp.Refund = &dto.RefundInfo{
			Status:        string(order.Refund.Status),
			TransactionID: order.Refund.TransactionID,
			ProcessedAt:   order.Refund.ProcessedAt,
		}
	}

	for _, entry := range order.StatusLog {
		resp.StatusLog = append(resp.StatusLog, dto.StatusLogEntry{
			Status:    string(entry.Status),
			Label:     entry.Status.Label(),
			Timestamp: entry.Timestamp,
		})
	}
	for _, note := range order.Notes {
		resp.Notes = append(resp.Notes, dto.OrderNote{
			Text:              note.Text,
			CreatedAt:         note.CreatedAt,
			VisibleToCustomer: note.VisibleToCustomer,
		})
	}

	return resp
}

func toComplaintResponse(complaint model.Complaint) dto.ComplaintResponse {
	resp := dto.ComplaintResponse{
		ID:        complaint.ID,
		OrderID:   complaint.OrderID,
		Message:   complaint.Message,
		ImageURL:  complaint.ImageURL,
		Status:    string(complaint.Status),
		Rating:    complaint.Rating,
		CreatedAt: complaint.CreatedAt,
	}
	for _, r := range complaint.Responses {
		resp.Responses = append(resp.Responses, dto.ComplaintMessage{
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
			FromStaff: r.FromStaff,
		})
	}
	return resp
}
