package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
)

// CatalogRepository describes persistence operations with catalog items.
type CatalogRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error)
	// ListAvailable returns items currently offered on the menu.
	ListAvailable(ctx context.Context) ([]model.CatalogItem, error)
	Create(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error)
	Update(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
