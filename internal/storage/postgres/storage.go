package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/domain/repository"
)

// checkoutTimeout bounds the order-creation transaction; a remote database
// gets a generous budget, after which the whole checkout aborts.
const checkoutTimeout = 30 * time.Second

// pgxPool is the subset of pgxpool.Pool the storage relies on; it allows
// substituting a mock pool in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

var newOrderID = func() string {
	return uuid.New().String()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type robuxItemRepository struct {
	storage *Storage
}

type settingRepository struct {
	storage *Storage
}

type promoRepository struct {
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

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
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
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) RobuxItems() repository.RobuxItemRepository {
	return &robuxItemRepository{storage: s}
}

func (s *Storage) Settings() repository.SettingRepository {
	return &settingRepository{storage: s}
}

func (s *Storage) Promos() repository.PromoRepository {
	return &promoRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            price BIGINT NOT NULL,
            stock INT NOT NULL CHECK (stock >= 0),
            category TEXT NOT NULL DEFAULT '',
            rarity TEXT NOT NULL DEFAULT '',
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS robux_items (
            id SERIAL PRIMARY KEY,
            amount INT UNIQUE NOT NULL,
            price BIGINT NOT NULL,
            active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS settings (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS promo_codes (
            id SERIAL PRIMARY KEY,
            code TEXT UNIQUE NOT NULL,
            discount_percent INT NOT NULL,
            max_uses INT NOT NULL DEFAULT 0,
            used_count INT NOT NULL DEFAULT 0,
            expires_at TIMESTAMPTZ,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            roblox_username TEXT NOT NULL,
            total BIGINT NOT NULL,
            status TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            operation_id TEXT,
            payment_url TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            product_id TEXT NOT NULL,
            name TEXT NOT NULL,
            quantity INT NOT NULL,
            unit_price BIGINT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_payment ON orders(payment_status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_operation ON orders(operation_id)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, is_admin, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, is_admin, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (id, name, price, stock, category, rarity, active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	created := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Price, product.Stock,
		product.Category, product.Rarity, product.Active).Scan(&created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	const query = `SELECT id, name, price, stock, category, rarity, active, created_at
                   FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.Rarity, &p.Active, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, price, stock, category, rarity, active, created_at
                   FROM products WHERE active ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.Rarity, &p.Active, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) UpdateStock(ctx context.Context, id string, stock int) error {
	const query = `UPDATE products SET stock=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, stock)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- RobuxItemRepository implementation ---

func (r *robuxItemRepository) GetByAmount(ctx context.Context, amount int) (*model.RobuxItem, error) {
	const query = `SELECT id, amount, price, active FROM robux_items WHERE amount=$1`
	var item model.RobuxItem
	err := r.storage.pool.QueryRow(ctx, query, amount).Scan(&item.ID, &item.Amount, &item.Price, &item.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *robuxItemRepository) ListActive(ctx context.Context) ([]model.RobuxItem, error) {
	const query = `SELECT id, amount, price, active FROM robux_items WHERE active ORDER BY amount`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.RobuxItem
	for rows.Next() {
		var item model.RobuxItem
		if err := rows.Scan(&item.ID, &item.Amount, &item.Price, &item.Active); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- SettingRepository implementation ---

func (r *settingRepository) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM settings WHERE key=$1`
	var value string
	err := r.storage.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domainErrors.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	const query = `INSERT INTO settings (key, value) VALUES ($1, $2)
                   ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err := r.storage.pool.Exec(ctx, query, key, value)
	return err
}

// --- PromoRepository implementation ---

func (r *promoRepository) Create(ctx context.Context, promo *model.PromoCode) (*model.PromoCode, error) {
	const query = `INSERT INTO promo_codes (code, discount_percent, max_uses, expires_at, active)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, used_count, created_at`
	created := *promo
	created.Code = model.NormalizePromoCode(promo.Code)
	err := r.storage.pool.QueryRow(ctx, query,
		created.Code, promo.DiscountPercent, promo.MaxUses, promo.ExpiresAt, promo.Active).
		Scan(&created.ID, &created.UsedCount, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *promoRepository) GetByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	const query = `SELECT id, code, discount_percent, max_uses, used_count, expires_at, active, created_at
                   FROM promo_codes WHERE code=$1`
	var p model.PromoCode
	err := r.storage.pool.QueryRow(ctx, query, model.NormalizePromoCode(code)).Scan(
		&p.ID, &p.Code, &p.DiscountPercent, &p.MaxUses, &p.UsedCount, &p.ExpiresAt, &p.Active, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *promoRepository) List(ctx context.Context) ([]model.PromoCode, error) {
	const query = `SELECT id, code, discount_percent, max_uses, used_count, expires_at, active, created_at
                   FROM promo_codes ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PromoCode
	for rows.Next() {
		var p model.PromoCode
		if err := rows.Scan(&p.ID, &p.Code, &p.DiscountPercent, &p.MaxUses, &p.UsedCount, &p.ExpiresAt, &p.Active, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

// CreateOrder runs the whole pricing + promo + write sequence in a single
// transaction. Stock decrement and promo consumption are conditional
// updates, so the check-and-decrement is atomic at the database even under
// concurrent checkouts.
func (r *orderRepository) CreateOrder(ctx context.Context, params repository.CreateOrderParams) (*model.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, checkoutTimeout)
	defer cancel()

	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		items := make([]model.OrderItem, 0, len(params.Lines))
		var subtotal int64
		rate := model.DefaultGamepassRate
		rateLoaded := false

		for _, line := range params.Lines {
			var (
				name      string
				unitPrice int64
			)

			switch line.Kind {
			case model.ItemKindInstant:
				var active bool
				err := tx.QueryRow(ctx, `SELECT price, active FROM robux_items WHERE amount=$1`, line.Amount).
					Scan(&unitPrice, &active)
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("%w: no package for %d robux", domainErrors.ErrInvalidRobuxItem, line.Amount)
				}
				if err != nil {
					return err
				}
				if !active {
					return fmt.Errorf("%w: %d robux", domainErrors.ErrInactiveRobuxPackage, line.Amount)
				}
				name = line.DisplayName()

			case model.ItemKindGamepass:
				if !rateLoaded {
					loaded, err := r.gamepassRate(ctx, tx)
					if err != nil {
						return err
					}
					rate = loaded
					rateLoaded = true
				}
				unitPrice = model.GamepassPrice(line.Amount, rate)
				name = line.DisplayName()

			default:
				const decrement = `UPDATE products SET stock = stock - $2
                                   WHERE id=$1 AND active AND stock >= $2
                                   RETURNING name, price`
				err := tx.QueryRow(ctx, decrement, line.ProductID, line.Quantity).Scan(&name, &unitPrice)
				if errors.Is(err, pgx.ErrNoRows) {
					var exists bool
					if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id=$1 AND active)`, line.ProductID).Scan(&exists); err != nil {
						return err
					}
					if !exists {
						return fmt.Errorf("%w: %s", domainErrors.ErrProductNotFound, line.ProductID)
					}
					return fmt.Errorf("%w: %s", domainErrors.ErrInsufficientStock, line.ProductID)
				}
				if err != nil {
					return err
				}
			}

			items = append(items, model.OrderItem{
				ProductID: line.ProductID,
				Name:      name,
				Quantity:  line.Quantity,
				UnitPrice: unitPrice,
			})
			subtotal += unitPrice * int64(line.Quantity)
		}

		var discount int64
		if code := model.NormalizePromoCode(params.PromoCode); code != "" {
			const consume = `UPDATE promo_codes SET used_count = used_count + 1
                             WHERE code=$1 AND active
                               AND (expires_at IS NULL OR expires_at > NOW())
                               AND (max_uses = 0 OR used_count < max_uses)
                             RETURNING discount_percent`
			var percent int
			err := tx.QueryRow(ctx, consume, code).Scan(&percent)
			switch {
			case errors.Is(err, pgx.ErrNoRows):
				// fail open: an unusable code never blocks checkout
			case err != nil:
				return err
			default:
				discount = model.PromoDiscount(subtotal, percent)
			}
		}

		o := &model.Order{
			ID:             newOrderID(),
			UserID:         params.UserID,
			RobloxUsername: params.RobloxUsername,
			Total:          model.FinalTotal(subtotal, discount),
			Status:         model.OrderStatusNew,
			PaymentStatus:  model.PaymentStatusPending,
		}

		const insertOrder = `INSERT INTO orders (id, user_id, roblox_username, total, status, payment_status)
                             VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, o.ID, o.UserID, o.RobloxUsername, o.Total, o.Status, o.PaymentStatus).
			Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, name, quantity, unit_price)
                            VALUES ($1, $2, $3, $4, $5) RETURNING id`
		for i := range items {
			items[i].OrderID = o.ID
			if err := tx.QueryRow(ctx, insertItem, o.ID, items[i].ProductID, items[i].Name, items[i].Quantity, items[i].UnitPrice).
				Scan(&items[i].ID); err != nil {
				return err
			}
		}

		o.Items = items
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// gamepassRate reads the configured rate inside the checkout transaction,
// falling back to the default when unset or unparsable.
func (r *orderRepository) gamepassRate(ctx context.Context, tx pgx.Tx) (float64, error) {
	var value string
	err := tx.QueryRow(ctx, `SELECT value FROM settings WHERE key=$1`, model.SettingGamepassRate).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.DefaultGamepassRate, nil
	}
	if err != nil {
		return 0, err
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil || rate <= 0 {
		r.storage.logger.Warn("invalid gamepass rate setting", slog.String("value", value))
		return model.DefaultGamepassRate, nil
	}
	return rate, nil
}

const orderColumns = `id, user_id, roblox_username, total, status, payment_status, operation_id, payment_url, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.RobloxUsername, &o.Total, &o.Status, &o.PaymentStatus,
		&o.OperationID, &o.PaymentURL, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, err
	}
	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepository) GetByOperationID(ctx context.Context, operationID string) (*model.Order, error) {
	return scanOrder(r.storage.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE operation_id=$1`, operationID))
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.RobloxUsername, &o.Total, &o.Status, &o.PaymentStatus,
			&o.OperationID, &o.PaymentURL, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.loadItems(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, product_id, name, quantity, unit_price
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) SetPaymentLink(ctx context.Context, orderID, operationID, paymentURL string) error {
	const query = `UPDATE orders SET operation_id=$2, payment_url=$3, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, operationID, paymentURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) SelectBatchAwaitingPayment(ctx context.Context, limit int) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders
                   WHERE payment_status='pending' AND operation_id IS NOT NULL
                   ORDER BY created_at LIMIT $1
                   FOR UPDATE SKIP LOCKED`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.RobloxUsername, &o.Total, &o.Status, &o.PaymentStatus,
			&o.OperationID, &o.PaymentURL, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkPaid confirms payment exactly once; repeated confirmations for an
// already settled order are no-ops.
func (r *orderRepository) MarkPaid(ctx context.Context, orderID string) error {
	const query = `UPDATE orders SET payment_status='paid', status='processing', updated_at=NOW()
                   WHERE id=$1 AND payment_status='pending'`
	tag, err := r.storage.pool.Exec(ctx, query, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var status model.PaymentStatus
		err := r.storage.pool.QueryRow(ctx, `SELECT payment_status FROM orders WHERE id=$1`, orderID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *orderRepository) MarkRefunded(ctx context.Context, orderID string) error {
	const query = `UPDATE orders SET payment_status='refunded', status='refunded', updated_at=NOW()
                   WHERE id=$1 AND payment_status='paid'`
	tag, err := r.storage.pool.Exec(ctx, query, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var status model.PaymentStatus
		err := r.storage.pool.QueryRow(ctx, `SELECT payment_status FROM orders WHERE id=$1`, orderID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		if err != nil {
			return err
		}
		return domainErrors.ErrOrderNotRefundable
	}
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
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
