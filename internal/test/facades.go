package test

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for the authenticated account.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// CatalogFacadeStub provides controllable behaviour for menu endpoints.
type CatalogFacadeStub struct {
	ItemsFn  func(context.Context) ([]model.CatalogItem, error)
	ItemFn   func(context.Context, uuid.UUID) (*model.CatalogItem, error)
	CreateFn func(context.Context, *model.CatalogItem) (*model.CatalogItem, error)
	UpdateFn func(context.Context, *model.CatalogItem) (*model.CatalogItem, error)
	DeleteFn func(context.Context, uuid.UUID) error
}

// CatalogItems returns the configured menu or a single seed item.
func (s CatalogFacadeStub) CatalogItems(ctx context.Context) ([]model.CatalogItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx)
	}
	return []model.CatalogItem{CatalogItemFixture("Margherita Classic", "12.999")}, nil
}

// CatalogItem returns the configured item.
func (s CatalogFacadeStub) CatalogItem(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	if s.ItemFn != nil {
		return s.ItemFn(ctx, id)
	}
	item := CatalogItemFixture("Margherita Classic", "12.999")
	item.ID = id
	return &item, nil
}

// CreateCatalogItem echoes the item back with a fresh id.
func (s CatalogFacadeStub) CreateCatalogItem(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, item)
	}
	stored := *item
	stored.ID = uuid.New()
	return &stored, nil
}

// UpdateCatalogItem echoes the item back.
func (s CatalogFacadeStub) UpdateCatalogItem(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, item)
	}
	stored := *item
	return &stored, nil
}

// DeleteCatalogItem delegates to the override or succeeds.
func (s CatalogFacadeStub) DeleteCatalogItem(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn    func(context.Context, int64, []model.LineItemConfig, model.DeliveryMethod, model.PaymentMethod, *model.DeliveryAddress) (*model.Order, error)
	OrdersFn   func(context.Context, int64) ([]model.Order, *uuid.UUID, error)
	ToggleFn   func(context.Context, int64, uuid.UUID) (*usecase.FavoriteToggleResult, error)
	FavoriteFn func(context.Context, int64) (*model.Order, error)
	ReorderFn  func(context.Context, int64) (*model.Order, error)
	SurpriseFn func(context.Context, *rand.Rand) (*model.SurpriseSelection, error)
}

// OrderFixture builds a priced single line order for the account.
func OrderFixture(accountID int64) model.Order {
	unit := decimal.RequireFromString("11.6991")
	return model.Order{
		ID:        uuid.New(),
		AccountID: accountID,
		Items: []model.OrderLineItem{{
			CatalogItemID: uuid.New(),
			Size:          model.SizeMedium,
			Crust:         model.CrustThin,
			Quantity:      1,
			UnitPrice:     unit,
			Subtotal:      unit,
		}},
		DeliveryMethod: model.DeliveryCarryOut,
		PaymentMethod:  model.PaymentCash,
		Total:          unit,
		Status:         model.OrderStatusPending,
		CreatedAt:      time.Unix(0, 0),
	}
}

// PlaceOrder delegates to the override or returns a priced default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, accountID int64, items []model.LineItemConfig, delivery model.DeliveryMethod, payment model.PaymentMethod, address *model.DeliveryAddress) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, accountID, items, delivery, payment, address)
	}
	order := OrderFixture(accountID)
	order.DeliveryMethod = delivery
	order.PaymentMethod = payment
	order.DeliveryAddress = address
	return &order, nil
}

// Orders returns predefined orders for the account.
func (s OrderFacadeStub) Orders(ctx context.Context, accountID int64) ([]model.Order, *uuid.UUID, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, accountID)
	}
	order := OrderFixture(accountID)
	return []model.Order{order}, nil, nil
}

// ToggleFavorite delegates to the override or reports a fresh favorite.
func (s OrderFacadeStub) ToggleFavorite(ctx context.Context, accountID int64, orderID uuid.UUID) (*usecase.FavoriteToggleResult, error) {
	if s.ToggleFn != nil {
		return s.ToggleFn(ctx, accountID, orderID)
	}
	order := OrderFixture(accountID)
	order.ID = orderID
	return &usecase.FavoriteToggleResult{NewState: usecase.FavoriteStateFavorited, Order: &order}, nil
}

// FavoriteOrder returns the configured favorite or none.
func (s OrderFacadeStub) FavoriteOrder(ctx context.Context, accountID int64) (*model.Order, error) {
	if s.FavoriteFn != nil {
		return s.FavoriteFn(ctx, accountID)
	}
	return nil, nil
}

// ReorderFavorite delegates to the override or returns a fresh order.
func (s OrderFacadeStub) ReorderFavorite(ctx context.Context, accountID int64) (*model.Order, error) {
	if s.ReorderFn != nil {
		return s.ReorderFn(ctx, accountID)
	}
	order := OrderFixture(accountID)
	return &order, nil
}

// Surprise delegates to the override or composes a fixed selection.
func (s OrderFacadeStub) Surprise(ctx context.Context, rng *rand.Rand) (*model.SurpriseSelection, error) {
	if s.SurpriseFn != nil {
		return s.SurpriseFn(ctx, rng)
	}
	return &model.SurpriseSelection{
		Item: model.LineItemConfig{
			CatalogItemID: uuid.New(),
			Size:          model.SizeLarge,
			Crust:         model.CrustStuffed,
			Quantity:      1,
		},
		DeliveryMethod: model.DeliveryCarryOut,
		PaymentMethod:  model.PaymentCard,
		UnitPrice:      decimal.RequireFromString("14.999"),
	}, nil
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Err     error
	ParseFn func(string) (int64, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}

// AccountSourceStub resolves account lookups for middleware tests.
type AccountSourceStub struct {
	AccountFn func(context.Context, int64) (*model.Account, error)
	IsAdmin   bool
	Err       error
}

// Account returns a stub account honoring the configured admin flag.
func (s AccountSourceStub) Account(ctx context.Context, id int64) (*model.Account, error) {
	if s.AccountFn != nil {
		return s.AccountFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Account{ID: id, Login: "stub", IsAdmin: s.IsAdmin}, nil
}

// PizzeriaFacadeStub aggregates facade dependencies for HTTP layer tests.
type PizzeriaFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
}
