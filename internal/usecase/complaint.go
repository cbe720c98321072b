package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/printeasy/printeasy/internal/domain/errors"
	"github.com/printeasy/printeasy/internal/domain/model"
	"github.com/printeasy/printeasy/internal/domain/repository"
)

// ComplaintUseCase manages support tickets tied to orders.
type ComplaintUseCase struct {
	complaints repository.ComplaintRepository
	orders     repository.OrderRepository
}

// NewComplaintUseCase constructs ComplaintUseCase.
func NewComplaintUseCase(complaints repository.ComplaintRepository, orders repository.OrderRepository) *ComplaintUseCase {
	return &ComplaintUseCase{complaints: complaints, orders: orders}
}

// Create opens a complaint against one of the user's orders.
func (u *ComplaintUseCase) Create(ctx context.Context, userID, orderID int64, message, imageURL string) (*model.Complaint, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domainErrors.ErrEmptyMessage
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}

	return u.complaints.Create(ctx, &model.Complaint{
		UserID:   userID,
		OrderID:  orderID,
		Message:  message,
		ImageURL: imageURL,
	})
}

// GetForUser returns one complaint if it belongs to the user.
func (u *ComplaintUseCase) GetForUser(ctx context.Context, userID, complaintID int64) (*model.Complaint, error) {
	complaint, err := u.complaints.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if complaint.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return complaint, nil
}

// ListByUser returns the user's complaints, newest first.
func (u *ComplaintUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Complaint, error) {
	return u.complaints.ListByUser(ctx, userID)
}

// ListByStatus returns complaints for the staff queue. Empty status means
// all complaints.
func (u *ComplaintUseCase) ListByStatus(ctx context.Context, status model.ComplaintStatus, limit int) ([]model.Complaint, error) {
	return u.complaints.ListByStatus(ctx, status, limit)
}

// Respond appends a message to the complaint thread. A staff reply moves
// the complaint to responded; a customer reply to a closed complaint
// reopens it, otherwise the status stays as is.
func (u *ComplaintUseCase) Respond(ctx context.Context, complaintID int64, message string, fromStaff bool) (*model.Complaint, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domainErrors.ErrEmptyMessage
	}

	complaint, err := u.complaints.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	status := complaint.Status
	switch {
	case fromStaff:
		status = model.ComplaintStatusResponded
	case complaint.Status == model.ComplaintStatusClosed:
		status = model.ComplaintStatusReopened
	}

	response := model.ComplaintResponse{
		Message:   message,
		CreatedAt: time.Now(),
		FromStaff: fromStaff,
	}
	if err := u.complaints.AddResponse(ctx, complaintID, response, status); err != nil {
		return nil, err
	}
	return u.complaints.GetByID(ctx, complaintID)
}

// RespondForUser is Respond with an ownership check for the customer side.
func (u *ComplaintUseCase) RespondForUser(ctx context.Context, userID, complaintID int64, message string) (*model.Complaint, error) {
	if _, err := u.GetForUser(ctx, userID, complaintID); err != nil {
		return nil, err
	}
	return u.Respond(ctx, complaintID, message, false)
}

// Close resolves a complaint.
func (u *ComplaintUseCase) Close(ctx context.Context, complaintID int64) (*model.Complaint, error) {
	if _, err := u.complaints.GetByID(ctx, complaintID); err != nil {
		return nil, err
	}
	if err := u.complaints.SetStatus(ctx, complaintID, model.ComplaintStatusClosed); err != nil {
		return nil, err
	}
	return u.complaints.GetByID(ctx, complaintID)
}

// Rate records the customer's satisfaction score. Allowed once, only while
// the complaint is closed.
func (u *ComplaintUseCase) Rate(ctx context.Context, userID, complaintID int64, rating int) (*model.Complaint, error) {
	if rating < 1 || rating > 5 {
		return nil, domainErrors.ErrInvalidRating
	}

	if _, err := u.GetForUser(ctx, userID, complaintID); err != nil {
		return nil, err
	}

	if err := u.complaints.SetRating(ctx, complaintID, rating); err != nil {
		return nil, err
	}
	return u.complaints.GetByID(ctx, complaintID)
}
