package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/repository"
)

// OrderUseCase assembles, prices and persists orders.
type OrderUseCase struct {
	orders   repository.OrderRepository
	catalog  repository.CatalogRepository
	accounts repository.AccountRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, catalog repository.CatalogRepository, accounts repository.AccountRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, catalog: catalog, accounts: accounts}
}

// Create validates the submitted configurations, prices each one against the
// current catalog and persists the resulting order in one piece. The stored
// order is returned with its server-assigned id, creation time and Pending
// status. Validation failures win over persistence: nothing is written unless
// every line item prices cleanly.
func (u *OrderUseCase) Create(ctx context.Context, accountID int64, items []model.LineItemConfig, delivery model.DeliveryMethod, payment model.PaymentMethod, address *model.DeliveryAddress) (*model.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items", domainErrors.ErrInvalidConfiguration)
	}
	if !delivery.Valid() {
		return nil, fmt.Errorf("%w: unknown delivery method %q", domainErrors.ErrInvalidConfiguration, delivery)
	}
	if !payment.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", domainErrors.ErrInvalidConfiguration, payment)
	}

	lines := make([]model.OrderLineItem, 0, len(items))
	total := decimal.Zero
	for _, cfg := range items {
		item, err := u.catalog.GetByID(ctx, cfg.CatalogItemID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: catalog item %s", domainErrors.ErrNotFound, cfg.CatalogItemID)
			}
			return nil, err
		}

		unitPrice, err := PriceConfiguration(*item, cfg.Size, cfg.Crust, cfg.Toppings)
		if err != nil {
			return nil, err
		}
		if cfg.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domainErrors.ErrInvalidConfiguration)
		}

		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(cfg.Quantity)))
		lines = append(lines, model.OrderLineItem{
			CatalogItemID: cfg.CatalogItemID,
			Size:          cfg.Size,
			Crust:         cfg.Crust,
			Toppings:      cfg.Toppings,
			Quantity:      cfg.Quantity,
			UnitPrice:     unitPrice,
			Subtotal:      subtotal,
		})
		total = total.Add(subtotal)
	}

	if delivery == model.DeliveryCourier {
		if address == nil || !address.Complete() {
			return nil, fmt.Errorf("%w: delivery address required", domainErrors.ErrInvalidConfiguration)
		}
	} else {
		address = nil
	}

	order := &model.Order{
		AccountID:       accountID,
		Items:           lines,
		DeliveryMethod:  delivery,
		PaymentMethod:   payment,
		DeliveryAddress: address,
		Total:           total,
		Status:          model.OrderStatusPending,
	}
	return u.orders.Create(ctx, order)
}

// ListByAccount returns the account's orders, newest first, together with the
// current favorite order reference so callers can derive the favorite flag.
func (u *OrderUseCase) ListByAccount(ctx context.Context, accountID int64) ([]model.Order, *uuid.UUID, error) {
	orders, err := u.orders.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	favorite, err := u.accounts.FavoriteOrderID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	return orders, favorite, nil
}

// ReorderFromFavorite places a fresh order copying the favorite's
// configuration. Prices are re-derived from the current catalog through the
// regular creation path, never copied from the stored order: a catalog price
// change between the original order and the reorder must be reflected.
func (u *OrderUseCase) ReorderFromFavorite(ctx context.Context, accountID int64) (*model.Order, error) {
	favoriteID, err := u.accounts.FavoriteOrderID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if favoriteID == nil {
		return nil, fmt.Errorf("%w: no favorite order", domainErrors.ErrNotFound)
	}

	favorite, err := u.orders.GetByID(ctx, *favoriteID)
	if err != nil {
		return nil, err
	}
	if favorite.AccountID != accountID {
		return nil, fmt.Errorf("%w: order %s", domainErrors.ErrNotFound, favoriteID)
	}

	configs := make([]model.LineItemConfig, 0, len(favorite.Items))
	for _, line := range favorite.Items {
		configs = append(configs, model.LineItemConfig{
			CatalogItemID: line.CatalogItemID,
			Size:          line.Size,
			Crust:         line.Crust,
			Toppings:      line.Toppings,
			Quantity:      line.Quantity,
		})
	}

	return u.Create(ctx, accountID, configs, favorite.DeliveryMethod, favorite.PaymentMethod, favorite.DeliveryAddress)
}
