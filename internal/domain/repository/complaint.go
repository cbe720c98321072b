package repository

import (
	"context"

	"github.com/printeasy/printeasy/internal/domain/model"
)

// ComplaintRepository describes persistence for support tickets.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error)
	GetByID(ctx context.Context, id int64) (*model.Complaint, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Complaint, error)
	ListByStatus(ctx context.Context, status model.ComplaintStatus, limit int) ([]model.Complaint, error)
	AddResponse(ctx context.Context, id int64, response model.ComplaintResponse, status model.ComplaintStatus) error
	SetStatus(ctx context.Context, id int64, status model.ComplaintStatus) error
	SetRating(ctx context.Context, id int64, rating int) error
}
