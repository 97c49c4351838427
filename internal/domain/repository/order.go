package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
// Create stores the order and all its line items atomically: a failed
// insert never leaves a partial order behind.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListByAccount(ctx context.Context, accountID int64) ([]model.Order, error)
}
