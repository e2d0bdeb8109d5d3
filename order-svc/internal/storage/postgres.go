package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"pickup-market/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// InsertOrder commits the order header and all line items in one transaction.
// A failed line insert rolls the header back, so a partial order is never
// visible.
func (r *PostgresRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, order_number, customer_id, shop_id, total_price, note, pickup_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, order.ID, order.OrderNumber, order.CustomerID, order.ShopID,
		order.TotalPrice, order.Note, order.PickupTime, order.Status,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert order %s: %w", order.OrderNumber, domain.ErrDuplicateOrderNumber)
		}
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		options, err := json.Marshal(item.Options)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, item_id, item_name, quantity, price_at_order, options)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, item.ID, item.OrderID, item.ItemID, item.ItemName, item.Quantity, item.PriceAtOrder, options); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	var rejectReason, paymentKey sql.NullString
	var paidAt sql.NullTime

	err := r.DB.QueryRowContext(ctx, `
		SELECT o.id, o.order_number, o.customer_id, o.shop_id, o.total_price,
		       COALESCE(o.note, ''), COALESCE(o.pickup_time, ''), o.status,
		       o.reject_reason, o.payment_key, o.paid_at, o.created_at, o.updated_at,
		       s.name, COALESCE(s.address, ''), COALESCE(s.phone, '')
		FROM orders o
		JOIN shops s ON s.id = o.shop_id
		WHERE o.id = $1
	`, orderID).Scan(
		&order.ID, &order.OrderNumber, &order.CustomerID, &order.ShopID, &order.TotalPrice,
		&order.Note, &order.PickupTime, &order.Status,
		&rejectReason, &paymentKey, &paidAt, &order.CreatedAt, &order.UpdatedAt,
		&order.ShopName, &order.ShopAddress, &order.ShopPhone,
	)
	if err != nil {
		return nil, err
	}
	order.RejectReason = rejectReason.String
	order.PaymentKey = paymentKey.String
	if paidAt.Valid {
		order.PaidAt = &paidAt.Time
	}

	items, err := r.listOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *PostgresRepository) listOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, item_id, item_name, quantity, price_at_order, options
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		var options []byte
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ItemID, &item.ItemName, &item.Quantity, &item.PriceAtOrder, &options); err != nil {
			continue
		}
		if len(options) > 0 {
			if err := json.Unmarshal(options, &item.Options); err != nil {
				item.Options = nil
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListShopOrders(ctx context.Context, shopID string) ([]domain.Order, error) {
	return r.listOrders(ctx, "shop_id", shopID)
}

func (r *PostgresRepository) ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	return r.listOrders(ctx, "customer_id", customerID)
}

func (r *PostgresRepository) listOrders(ctx context.Context, column, value string) ([]domain.Order, error) {
	query := fmt.Sprintf(`
		SELECT o.id, o.order_number, o.customer_id, o.shop_id, o.total_price,
		       COALESCE(o.note, ''), COALESCE(o.pickup_time, ''), o.status,
		       COALESCE(o.reject_reason, ''), o.created_at, o.updated_at, s.name
		FROM orders o
		JOIN shops s ON s.id = o.shop_id
		WHERE o.%s = $1
		ORDER BY o.created_at DESC
	`, column)

	rows, err := r.DB.QueryContext(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.OrderNumber, &order.CustomerID, &order.ShopID, &order.TotalPrice,
			&order.Note, &order.PickupTime, &order.Status,
			&order.RejectReason, &order.CreatedAt, &order.UpdatedAt, &order.ShopName,
		); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// UpdateStatus is a guarded write: it only applies when the stored status
// still equals the status the caller observed.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, orderID string, from, to domain.OrderStatus, rejectReason string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, reject_reason = NULLIF($2, ''), updated_at = now()
		WHERE id = $3 AND status = $4
	`, to, rejectReason, orderID, from)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresRepository) MarkPaid(ctx context.Context, orderID, paymentKey string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET payment_key = $1, paid_at = now(), updated_at = now() WHERE id = $2
	`, paymentKey, orderID)
	return err
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID string, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRowContext(ctx, `SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) IsShopOpen(ctx context.Context, shopID string) (bool, error) {
	var open bool
	err := r.DB.QueryRowContext(ctx, `SELECT COALESCE(is_open, false) FROM shops WHERE id = $1`, shopID).Scan(&open)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return open, err
}

func (r *PostgresRepository) IsShopOwner(ctx context.Context, shopID, userID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM shop_owners WHERE shop_id = $1 AND user_id = $2)
	`, shopID, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			order_number TEXT NOT NULL,
			customer_id UUID NOT NULL,
			shop_id UUID NOT NULL,
			total_price INTEGER NOT NULL,
			note TEXT,
			pickup_time TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			reject_reason TEXT,
			payment_key TEXT,
			paid_at TIMESTAMPTZ,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS orders_order_number_key ON orders (order_number)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			item_id UUID NOT NULL,
			item_name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			price_at_order INTEGER NOT NULL,
			options JSONB
		)`,
		`CREATE TABLE IF NOT EXISTS shop_owners (
			shop_id UUID NOT NULL,
			user_id UUID NOT NULL,
			PRIMARY KEY (shop_id, user_id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
