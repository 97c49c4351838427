package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/repository"
)

// pool is the subset of pgxpool.Pool the storage uses; tests substitute a
// pgxmock pool through it.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pool
	logger *slog.Logger
}

type accountRepository struct {
	storage *Storage
}

type catalogRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pgPool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pgPool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pgPool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) Catalog() repository.CatalogRepository {
	return &catalogRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            favorite_order_id UUID,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS catalog_items (
            id UUID PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            base_price NUMERIC(16,6) NOT NULL CHECK (base_price >= 0),
            image TEXT NOT NULL DEFAULT '',
            toppings TEXT[] NOT NULL DEFAULT '{}',
            category TEXT NOT NULL,
            is_available BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            account_id BIGINT NOT NULL REFERENCES accounts(id),
            delivery_method TEXT NOT NULL,
            payment_method TEXT NOT NULL,
            street TEXT,
            city TEXT,
            state TEXT,
            zip_code TEXT,
            total NUMERIC(16,6) NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            position INT NOT NULL,
            catalog_item_id UUID NOT NULL,
            size TEXT NOT NULL,
            crust TEXT NOT NULL,
            toppings TEXT[] NOT NULL DEFAULT '{}',
            quantity INT NOT NULL CHECK (quantity >= 1),
            unit_price NUMERIC(16,6) NOT NULL,
            subtotal NUMERIC(16,6) NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_account ON orders(account_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id, position)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// classify maps low-level persistence failures onto the domain taxonomy.
// Timeouts and dead connections become ErrUnavailable so callers know a
// retry is safe.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s", domainErrors.ErrUnavailable, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "57P01" {
		return fmt.Errorf("%w: %s", domainErrors.ErrUnavailable, err)
	}
	if pgconn.Timeout(err) {
		return fmt.Errorf("%w: %s", domainErrors.ErrUnavailable, err)
	}
	return err
}

// --- AccountRepository implementation ---

func (r *accountRepository) Create(ctx context.Context, login, passwordHash string) (*model.Account, error) {
	const query = `INSERT INTO accounts (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var a model.Account
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, classify(err)
	}
	a.Login = login
	a.PasswordHash = passwordHash
	return &a, nil
}

func (r *accountRepository) GetByLogin(ctx context.Context, login string) (*model.Account, error) {
	const query = `SELECT id, login, password_hash, is_admin, favorite_order_id, created_at FROM accounts WHERE login=$1`
	return r.scanAccount(r.storage.pool.QueryRow(ctx, query, login))
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	const query = `SELECT id, login, password_hash, is_admin, favorite_order_id, created_at FROM accounts WHERE id=$1`
	return r.scanAccount(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *accountRepository) scanAccount(row pgx.Row) (*model.Account, error) {
	var a model.Account
	err := row.Scan(&a.ID, &a.Login, &a.PasswordHash, &a.IsAdmin, &a.FavoriteOrderID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return &a, nil
}

func (r *accountRepository) FavoriteOrderID(ctx context.Context, accountID int64) (*uuid.UUID, error) {
	const query = `SELECT favorite_order_id FROM accounts WHERE id=$1`
	var favorite *uuid.UUID
	err := r.storage.pool.QueryRow(ctx, query, accountID).Scan(&favorite)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return favorite, nil
}

// SetFavoriteOrderID performs a compare-and-set against the stored reference:
// the update applies only while the stored value still equals old. Zero rows
// for an existing account means another toggle won the race.
func (r *accountRepository) SetFavoriteOrderID(ctx context.Context, accountID int64, old, new *uuid.UUID) error {
	const query = `UPDATE accounts SET favorite_order_id=$3 WHERE id=$1 AND favorite_order_id IS NOT DISTINCT FROM $2`
	tag, err := r.storage.pool.Exec(ctx, query, accountID, old, new)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, accountID); err != nil {
			return err
		}
		return domainErrors.ErrConflict
	}
	return nil
}

// --- CatalogRepository implementation ---

const catalogColumns = `id, name, description, base_price::text, image, toppings, category, is_available, created_at, updated_at`

func (r *catalogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items WHERE id=$1`
	item, err := scanCatalogItem(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return item, nil
}

func (r *catalogRepository) ListAvailable(ctx context.Context) ([]model.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items WHERE is_available ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []model.CatalogItem
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func (r *catalogRepository) Create(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	const query = `INSERT INTO catalog_items (id, name, description, base_price, image, toppings, category, is_available)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING created_at, updated_at`
	stored := *item
	stored.ID = uuid.New()
	err := r.storage.pool.QueryRow(ctx, query,
		stored.ID, stored.Name, stored.Description, stored.BasePrice.String(),
		stored.Image, stored.Toppings, string(stored.Category), stored.IsAvailable,
	).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, classify(err)
	}
	return &stored, nil
}

func (r *catalogRepository) Update(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	const query = `UPDATE catalog_items
                   SET name=$2, description=$3, base_price=$4, image=$5, toppings=$6, category=$7, is_available=$8, updated_at=NOW()
                   WHERE id=$1
                   RETURNING created_at, updated_at`
	stored := *item
	err := r.storage.pool.QueryRow(ctx, query,
		stored.ID, stored.Name, stored.Description, stored.BasePrice.String(),
		stored.Image, stored.Toppings, string(stored.Category), stored.IsAvailable,
	).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return &stored, nil
}

func (r *catalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM catalog_items WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanCatalogItem(row pgx.Row) (*model.CatalogItem, error) {
	var (
		item     model.CatalogItem
		price    string
		category string
	)
	err := row.Scan(&item.ID, &item.Name, &item.Description, &price, &item.Image,
		&item.Toppings, &category, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	item.BasePrice, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse base price: %w", err)
	}
	item.Category = model.Category(category)
	return &item, nil
}

// --- OrderRepository implementation ---

// Create inserts the order row and all line item rows inside one
// transaction. Either the whole order lands or nothing does.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	stored := *order
	stored.ID = uuid.New()
	stored.Items = append([]model.OrderLineItem(nil), order.Items...)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (id, account_id, delivery_method, payment_method, street, city, state, zip_code, total, status)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                             RETURNING created_at`
		var street, city, state, zip *string
		if stored.DeliveryAddress != nil {
			street = &stored.DeliveryAddress.Street
			city = &stored.DeliveryAddress.City
			state = &stored.DeliveryAddress.State
			zip = &stored.DeliveryAddress.ZipCode
		}
		err := tx.QueryRow(ctx, insertOrder,
			stored.ID, stored.AccountID, string(stored.DeliveryMethod), string(stored.PaymentMethod),
			street, city, state, zip, stored.Total.String(), string(stored.Status),
		).Scan(&stored.CreatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, position, catalog_item_id, size, crust, toppings, quantity, unit_price, subtotal)
                            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		for i, line := range stored.Items {
			if _, err := tx.Exec(ctx, insertItem,
				stored.ID, i, line.CatalogItemID, string(line.Size), string(line.Crust),
				line.Toppings, line.Quantity, line.UnitPrice.String(), line.Subtotal.String(),
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return &stored, nil
}

const orderColumns = `id, account_id, delivery_method, payment_method, street, city, state, zip_code, total::text, status, created_at`

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, classify(err)
	}
	if err := r.loadItems(ctx, map[uuid.UUID]*model.Order{order.ID: order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByAccount(ctx context.Context, accountID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE account_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []model.Order
	index := make(map[uuid.UUID]*model.Order)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	for i := range result {
		index[result[i].ID] = &result[i]
	}
	if err := r.loadItems(ctx, index); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orders map[uuid.UUID]*model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(orders))
	for id := range orders {
		ids = append(ids, id)
	}

	const query = `SELECT order_id, catalog_item_id, size, crust, toppings, quantity, unit_price::text, subtotal::text
                   FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, position`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return classify(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID             uuid.UUID
			line                model.OrderLineItem
			size, crust         string
			unitPrice, subtotal string
		)
		if err := rows.Scan(&orderID, &line.CatalogItemID, &size, &crust, &line.Toppings, &line.Quantity, &unitPrice, &subtotal); err != nil {
			return classify(err)
		}
		line.Size = model.SizeOption(size)
		line.Crust = model.CrustOption(crust)
		if line.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
			return fmt.Errorf("parse unit price: %w", err)
		}
		if line.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
			return fmt.Errorf("parse subtotal: %w", err)
		}
		if order, ok := orders[orderID]; ok {
			order.Items = append(order.Items, line)
		}
	}
	if err := rows.Err(); err != nil {
		return classify(err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		order               model.Order
		delivery, payment   string
		street, city, state *string
		zip                 *string
		total, status       string
	)
	err := row.Scan(&order.ID, &order.AccountID, &delivery, &payment,
		&street, &city, &state, &zip, &total, &status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	order.DeliveryMethod = model.DeliveryMethod(delivery)
	order.PaymentMethod = model.PaymentMethod(payment)
	order.Status = model.OrderStatus(status)
	if order.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if street != nil {
		order.DeliveryAddress = &model.DeliveryAddress{Street: *street}
		if city != nil {
			order.DeliveryAddress.City = *city
		}
		if state != nil {
			order.DeliveryAddress.State = *state
		}
		if zip != nil {
			order.DeliveryAddress.ZipCode = *zip
		}
	}
	return &order, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
