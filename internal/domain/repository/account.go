package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
)

// AccountRepository describes persistence operations with accounts.
type AccountRepository interface {
	Create(ctx context.Context, login, passwordHash string) (*model.Account, error)
	GetByLogin(ctx context.Context, login string) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)

	// FavoriteOrderID returns the current favorite order reference, nil when unset.
	FavoriteOrderID(ctx context.Context, accountID int64) (*uuid.UUID, error)
	// SetFavoriteOrderID updates the favorite reference only if it still equals
	// old; a stale old value fails with ErrConflict.
	SetFavoriteOrderID(ctx context.Context, accountID int64, old, new *uuid.UUID) error
}
