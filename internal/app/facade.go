package app

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"

	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/usecase"
)

// PizzeriaFacade aggregates the use cases exposed over HTTP and to the
// background refresher.
type PizzeriaFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	orders    *usecase.OrderUseCase
	favorites *usecase.FavoriteUseCase
	surprise  *usecase.SurpriseUseCase
}

func NewPizzeriaFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, favorites *usecase.FavoriteUseCase, surprise *usecase.SurpriseUseCase) *PizzeriaFacade {
	return &PizzeriaFacade{auth: auth, catalog: catalog, orders: orders, favorites: favorites, surprise: surprise}
}

func (f *PizzeriaFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *PizzeriaFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *PizzeriaFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *PizzeriaFacade) Account(ctx context.Context, id int64) (*model.Account, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *PizzeriaFacade) CatalogItems(ctx context.Context) ([]model.CatalogItem, error) {
	return f.catalog.ListAvailable(ctx)
}

func (f *PizzeriaFacade) CatalogItem(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	return f.catalog.Get(ctx, id)
}

func (f *PizzeriaFacade) CreateCatalogItem(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	return f.catalog.Create(ctx, item)
}

func (f *PizzeriaFacade) UpdateCatalogItem(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	return f.catalog.Update(ctx, item)
}

func (f *PizzeriaFacade) DeleteCatalogItem(ctx context.Context, id uuid.UUID) error {
	return f.catalog.Delete(ctx, id)
}

func (f *PizzeriaFacade) PlaceOrder(ctx context.Context, accountID int64, items []model.LineItemConfig, delivery model.DeliveryMethod, payment model.PaymentMethod, address *model.DeliveryAddress) (*model.Order, error) {
	return f.orders.Create(ctx, accountID, items, delivery, payment, address)
}

func (f *PizzeriaFacade) Orders(ctx context.Context, accountID int64) ([]model.Order, *uuid.UUID, error) {
	return f.orders.ListByAccount(ctx, accountID)
}

func (f *PizzeriaFacade) ToggleFavorite(ctx context.Context, accountID int64, orderID uuid.UUID) (*usecase.FavoriteToggleResult, error) {
	return f.favorites.Toggle(ctx, accountID, orderID)
}

func (f *PizzeriaFacade) FavoriteOrder(ctx context.Context, accountID int64) (*model.Order, error) {
	order, err := f.favorites.Favorite(ctx, accountID)
	if err != nil && errors.Is(err, domainErrors.ErrNotFound) {
		// A dangling reference behaves like no favorite at all.
		return nil, nil
	}
	return order, err
}

func (f *PizzeriaFacade) ReorderFavorite(ctx context.Context, accountID int64) (*model.Order, error) {
	return f.orders.ReorderFromFavorite(ctx, accountID)
}

func (f *PizzeriaFacade) Surprise(ctx context.Context, rng *rand.Rand) (*model.SurpriseSelection, error) {
	return f.surprise.Compose(ctx, rng)
}

func (f *PizzeriaFacade) RefreshCatalog(ctx context.Context) error {
	return f.catalog.Refresh(ctx)
}
