package repository

import (
	"context"

	"github.com/printeasy/printeasy/internal/domain/model"
)

// MediaDeletionRepository is the retry queue for media host deletions.
type MediaDeletionRepository interface {
	Enqueue(ctx context.Context, remoteIDs []string) error
	SelectBatch(ctx context.Context, limit int) ([]model.MediaDeletion, error)
	MarkDone(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, message string) error
}
