package handlers

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// CatalogFacade encapsulates menu operations exposed via HTTP.
type CatalogFacade interface {
	CatalogItems(ctx context.Context) ([]model.CatalogItem, error)
	CatalogItem(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error)
	CreateCatalogItem(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error)
	DeleteCatalogItem(ctx context.Context, id uuid.UUID) error
}

// OrderFacade encapsulates order and favorite operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, accountID int64, items []model.LineItemConfig, delivery model.DeliveryMethod, payment model.PaymentMethod, address *model.DeliveryAddress) (*model.Order, error)
	Orders(ctx context.Context, accountID int64) ([]model.Order, *uuid.UUID, error)
	ToggleFavorite(ctx context.Context, accountID int64, orderID uuid.UUID) (*usecase.FavoriteToggleResult, error)
	FavoriteOrder(ctx context.Context, accountID int64) (*model.Order, error)
	ReorderFavorite(ctx context.Context, accountID int64) (*model.Order, error)
	Surprise(ctx context.Context, rng *rand.Rand) (*model.SurpriseSelection, error)
}

// PizzeriaFacade aggregates the full set of operations used across handlers.
type PizzeriaFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
}
