package repository

import (
	"context"

	"github.com/printeasy/printeasy/internal/domain/model"
)

// CartRepository stores the server-side draft order per user.
type CartRepository interface {
	Get(ctx context.Context, userID int64) (*model.Cart, error)
	Put(ctx context.Context, userID int64, items []model.LineItem) (*model.Cart, error)
	Clear(ctx context.Context, userID int64) error
}
