package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
)

// AccountRepositoryStub stores accounts in-memory for tests. The favorite
// reference honors compare-and-set semantics so concurrency tests can
// exercise conflicts.
type AccountRepositoryStub struct {
	mu        sync.Mutex
	Accounts  map[string]*model.Account
	ByID      map[int64]*model.Account
	Favorites map[int64]*uuid.UUID
	Next      int64
	Err       error

	// SetFavoriteErr, when set, fails the next SetFavoriteOrderID call once.
	SetFavoriteErr error
}

// NewAccountRepositoryStub constructs stub repository with initialized maps.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		Accounts:  make(map[string]*model.Account),
		ByID:      make(map[int64]*model.Account),
		Favorites: make(map[int64]*uuid.UUID),
		Next:      1,
	}
}

// Create registers account unless already exists or stub has explicit error.
func (s *AccountRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.Accounts[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	account := &model.Account{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Accounts[login] = account
	s.ByID[account.ID] = account
	return account, nil
}

// GetByLogin fetches account by login or returns not found.
func (s *AccountRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if account, ok := s.Accounts[login]; ok {
		return account, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches account by identifier or returns not found.
func (s *AccountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if account, ok := s.ByID[id]; ok {
		return account, nil
	}
	return nil, domainErrors.ErrNotFound
}

// FavoriteOrderID returns the stored favorite reference.
func (s *AccountRepositoryStub) FavoriteOrderID(ctx context.Context, accountID int64) (*uuid.UUID, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if favorite, ok := s.Favorites[accountID]; ok && favorite != nil {
		id := *favorite
		return &id, nil
	}
	return nil, nil
}

// SetFavoriteOrderID applies the update only when the stored value still
// matches old, mirroring the storage layer's compare-and-set.
func (s *AccountRepositoryStub) SetFavoriteOrderID(ctx context.Context, accountID int64, old, new *uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	if s.SetFavoriteErr != nil {
		err := s.SetFavoriteErr
		s.SetFavoriteErr = nil
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.Favorites[accountID]
	if !uuidPtrEqual(current, old) {
		return domainErrors.ErrConflict
	}
	if new == nil {
		delete(s.Favorites, accountID)
		return nil
	}
	id := *new
	s.Favorites[accountID] = &id
	return nil
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// CatalogRepositoryStub serves a fixed set of catalog items.
type CatalogRepositoryStub struct {
	Items    []model.CatalogItem
	GetErr   error
	ListErr  error
	ListFn   func(context.Context) ([]model.CatalogItem, error)
	CreateFn func(context.Context, *model.CatalogItem) (*model.CatalogItem, error)
	UpdateFn func(context.Context, *model.CatalogItem) (*model.CatalogItem, error)
	DeleteFn func(context.Context, uuid.UUID) error
}

// GetByID returns the matching item or not found.
func (s *CatalogRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	for _, item := range s.Items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListAvailable returns configured items, skipping unavailable ones.
func (s *CatalogRepositoryStub) ListAvailable(ctx context.Context) ([]model.CatalogItem, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var result []model.CatalogItem
	for _, item := range s.Items {
		if item.IsAvailable {
			result = append(result, item)
		}
	}
	return result, nil
}

// Create stores the item with a fresh identifier.
func (s *CatalogRepositoryStub) Create(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, item)
	}
	stored := *item
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Items = append(s.Items, stored)
	return &stored, nil
}

// Update replaces the stored item.
func (s *CatalogRepositoryStub) Update(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, item)
	}
	for i := range s.Items {
		if s.Items[i].ID == item.ID {
			stored := *item
			stored.UpdatedAt = time.Now()
			s.Items[i] = stored
			return &stored, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the stored item.
func (s *CatalogRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// OrderRepositoryStub records created orders in-memory, newest first.
type OrderRepositoryStub struct {
	mu       sync.Mutex
	Orders   []model.Order
	CreateFn func(context.Context, *model.Order) (*model.Order, error)
	GetFn    func(context.Context, uuid.UUID) (*model.Order, error)
	ListFn   func(context.Context, int64) ([]model.Order, error)
}

// Create assigns an id and creation time and prepends the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *order
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	s.Orders = append([]model.Order{stored}, s.Orders...)
	return &stored, nil
}

// GetByID returns the matching order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByAccount returns the account's orders in stored (newest first) order.
func (s *OrderRepositoryStub) ListByAccount(ctx context.Context, accountID int64) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, accountID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.Orders {
		if o.AccountID == accountID {
			result = append(result, o)
		}
	}
	return result, nil
}
