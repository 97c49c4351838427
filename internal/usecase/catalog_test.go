package usecase_test

import (
	. "github.com/chlagouGhassen/pizza-petes/internal/usecase"

	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/chlagouGhassen/pizza-petes/internal/adapter/catalogcache"
	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/test"
)

func newCatalogFixtures() (*CatalogUseCase, *test.CatalogRepositoryStub, *test.MapCache) {
	repo := &test.CatalogRepositoryStub{Items: test.SeedCatalog()}
	cache := test.NewMapCache()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCatalogUseCase(repo, cache, logger), repo, cache
}

func TestCatalogListAvailableServesCachedSnapshot(t *testing.T) {
	uc, repo, cache := newCatalogFixtures()

	snapshot := []model.CatalogItem{test.CatalogItemFixture("Cached Special", "9.99")}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	cache.Values[catalogcache.SnapshotKey] = string(payload)

	repo.ListErr = errors.New("storage must not be touched")
	items, err := uc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Cached Special" {
		t.Fatalf("items = %v, want cached snapshot", items)
	}
}

func TestCatalogListAvailableFallsBackOnCacheMiss(t *testing.T) {
	uc, repo, _ := newCatalogFixtures()

	items, err := uc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != len(repo.Items) {
		t.Fatalf("listed %d items, want %d", len(items), len(repo.Items))
	}
}

func TestCatalogListAvailableFallsBackOnCacheError(t *testing.T) {
	uc, repo, cache := newCatalogFixtures()
	cache.GetErr = errors.New("cache down")

	items, err := uc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != len(repo.Items) {
		t.Fatalf("listed %d items, want %d", len(items), len(repo.Items))
	}
}

func TestCatalogListAvailableFallsBackOnCorruptSnapshot(t *testing.T) {
	uc, repo, cache := newCatalogFixtures()
	cache.Values[catalogcache.SnapshotKey] = "{not json"

	items, err := uc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != len(repo.Items) {
		t.Fatalf("listed %d items, want %d", len(items), len(repo.Items))
	}
}

func TestCatalogRefreshStoresSnapshots(t *testing.T) {
	uc, repo, cache := newCatalogFixtures()

	if err := uc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, ok := cache.Values[catalogcache.SnapshotKey]
	if !ok {
		t.Fatal("full snapshot not written")
	}
	var items []model.CatalogItem
	if err := json.Unmarshal([]byte(stored), &items); err != nil {
		t.Fatalf("snapshot unreadable: %v", err)
	}
	if len(items) != len(repo.Items) {
		t.Fatalf("snapshot holds %d items, want %d", len(items), len(repo.Items))
	}

	for _, category := range model.Categories() {
		key := catalogcache.CategoryKey(string(category))
		if _, ok := cache.Values[key]; !ok {
			t.Fatalf("category snapshot %s not written", key)
		}
	}
}

func TestCatalogCreateValidation(t *testing.T) {
	uc, _, _ := newCatalogFixtures()

	tests := []struct {
		name string
		item model.CatalogItem
	}{
		{
			name: "blank name",
			item: model.CatalogItem{Name: "  ", Category: model.CategoryClassic},
		},
		{
			name: "unknown category",
			item: model.CatalogItem{Name: "Calzone", Category: "Dessert"},
		},
		{
			name: "negative price",
			item: model.CatalogItem{Name: "Calzone", Category: model.CategoryClassic, BasePrice: decimal.RequireFromString("-1")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), &tc.item); !errors.Is(err, domainErrors.ErrInvalidConfiguration) {
				t.Fatalf("error = %v, want %v", err, domainErrors.ErrInvalidConfiguration)
			}
		})
	}
}

func TestCatalogCreateAndUpdate(t *testing.T) {
	uc, repo, _ := newCatalogFixtures()

	item := model.CatalogItem{
		Name:      "Quattro Formaggi",
		Category:  model.CategorySpecialty,
		BasePrice: decimal.RequireFromString("16.999"),
	}
	created, err := uc.Create(context.Background(), &item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Items) != 7 {
		t.Fatalf("repo holds %d items, want 7", len(repo.Items))
	}

	created.BasePrice = decimal.RequireFromString("17.499")
	updated, err := uc.Update(context.Background(), created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.BasePrice.Equal(created.BasePrice) {
		t.Fatalf("price = %s, want %s", updated.BasePrice, created.BasePrice)
	}
}
