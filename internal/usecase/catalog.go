package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/chlagouGhassen/pizza-petes/internal/adapter/catalogcache"
	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/repository"
)

// CatalogUseCase serves the menu and its administration.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
	cache   catalogcache.Cache
	logger  *slog.Logger
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository, cache catalogcache.Cache, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, cache: cache, logger: logger}
}

// ListAvailable returns items currently on the menu, serving the cached
// snapshot when one is present. The cache is advisory: any cache failure
// falls through to the repository.
func (u *CatalogUseCase) ListAvailable(ctx context.Context) ([]model.CatalogItem, error) {
	if cached, err := u.cache.Get(ctx, catalogcache.SnapshotKey); err == nil && cached != "" {
		var items []model.CatalogItem
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
		u.logger.Warn("catalog snapshot unreadable, falling back to storage")
	}
	return u.catalog.ListAvailable(ctx)
}

// Get returns a single catalog item.
func (u *CatalogUseCase) Get(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	return u.catalog.GetByID(ctx, id)
}

// Create adds a new item to the catalog.
func (u *CatalogUseCase) Create(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	return u.catalog.Create(ctx, item)
}

// Update replaces the stored item fields.
func (u *CatalogUseCase) Update(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	return u.catalog.Update(ctx, item)
}

// Delete removes the item from the catalog.
func (u *CatalogUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.catalog.Delete(ctx, id)
}

// Refresh rebuilds the cached menu snapshots from storage: the full
// available list plus one key per category, written concurrently. Used by
// the background refresher; safe to call with a noop cache.
func (u *CatalogUseCase) Refresh(ctx context.Context) error {
	items, err := u.catalog.ListAvailable(ctx)
	if err != nil {
		return err
	}

	grouped := make(map[model.Category][]model.CatalogItem)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return u.storeSnapshot(gctx, catalogcache.SnapshotKey, items)
	})
	for category, categoryItems := range grouped {
		g.Go(func() error {
			return u.storeSnapshot(gctx, catalogcache.CategoryKey(string(category)), categoryItems)
		})
	}
	return g.Wait()
}

func (u *CatalogUseCase) storeSnapshot(ctx context.Context, key string, items []model.CatalogItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return u.cache.Set(ctx, key, string(payload))
}

func validateItem(item *model.CatalogItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name required", domainErrors.ErrInvalidConfiguration)
	}
	if !item.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domainErrors.ErrInvalidConfiguration, item.Category)
	}
	if item.BasePrice.IsNegative() {
		return fmt.Errorf("%w: base price must not be negative", domainErrors.ErrInvalidConfiguration)
	}
	return nil
}
