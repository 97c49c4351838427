package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/repository"
)

// FavoriteState reports the outcome of a toggle.
type FavoriteState string

const (
	FavoriteStateFavorited   FavoriteState = "favorited"
	FavoriteStateUnfavorited FavoriteState = "unfavorited"
)

// FavoriteToggleResult carries the new relation state and the toggled order.
type FavoriteToggleResult struct {
	NewState FavoriteState
	Order    *model.Order
}

// FavoriteUseCase owns the account's single favorite order reference.
type FavoriteUseCase struct {
	accounts repository.AccountRepository
	orders   repository.OrderRepository
}

// NewFavoriteUseCase constructs FavoriteUseCase.
func NewFavoriteUseCase(accounts repository.AccountRepository, orders repository.OrderRepository) *FavoriteUseCase {
	return &FavoriteUseCase{accounts: accounts, orders: orders}
}

// Favorite returns the account's favorite order, or nil when none is set.
func (u *FavoriteUseCase) Favorite(ctx context.Context, accountID int64) (*model.Order, error) {
	favoriteID, err := u.accounts.FavoriteOrderID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if favoriteID == nil {
		return nil, nil
	}
	return u.orders.GetByID(ctx, *favoriteID)
}

// Toggle flips the favorite relation for the given order: clears it when the
// order is the current favorite, otherwise points the relation at the order,
// replacing any previous favorite. The write is a compare-and-set against the
// value read; a concurrent toggle surfaces as a conflict and is retried once
// with a fresh read before giving up.
func (u *FavoriteUseCase) Toggle(ctx context.Context, accountID int64, orderID uuid.UUID) (*FavoriteToggleResult, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.AccountID != accountID {
		return nil, fmt.Errorf("%w: order %s", domainErrors.ErrNotFound, orderID)
	}

	result, err := u.toggleOnce(ctx, accountID, order)
	if errors.Is(err, domainErrors.ErrConflict) {
		result, err = u.toggleOnce(ctx, accountID, order)
	}
	return result, err
}

func (u *FavoriteUseCase) toggleOnce(ctx context.Context, accountID int64, order *model.Order) (*FavoriteToggleResult, error) {
	current, err := u.accounts.FavoriteOrderID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var desired *uuid.UUID
	state := FavoriteStateFavorited
	if current != nil && *current == order.ID {
		desired = nil
		state = FavoriteStateUnfavorited
	} else {
		id := order.ID
		desired = &id
	}

	if err := u.accounts.SetFavoriteOrderID(ctx, accountID, current, desired); err != nil {
		return nil, err
	}
	return &FavoriteToggleResult{NewState: state, Order: order}, nil
}
