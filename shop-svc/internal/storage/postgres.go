package storage

import (
	"context"
	"database/sql"
	"fmt"

	"pickup-market/shop-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateShop(ctx context.Context, shop *domain.Shop) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO shops (id, name, address, phone, description, image_url, is_open, avg_prep_time, min_order_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`,
		shop.ID, shop.Name, shop.Address, shop.Phone, shop.Description,
		shop.ImageURL, shop.IsOpen, shop.AvgPrepTime, shop.MinOrderAmount,
	).Scan(&shop.CreatedAt, &shop.UpdatedAt)
}

const shopColumns = `id, name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(description, ''),
	COALESCE(image_url, ''), is_open, avg_prep_time, min_order_amount, created_at, updated_at`

func scanShop(row interface{ Scan(...any) error }, shop *domain.Shop) error {
	return row.Scan(&shop.ID, &shop.Name, &shop.Address, &shop.Phone, &shop.Description,
		&shop.ImageURL, &shop.IsOpen, &shop.AvgPrepTime, &shop.MinOrderAmount,
		&shop.CreatedAt, &shop.UpdatedAt)
}

func (r *PostgresRepository) ListShops(ctx context.Context) ([]domain.Shop, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+shopColumns+` FROM shops ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		var shop domain.Shop
		if err := scanShop(rows, &shop); err != nil {
			continue
		}
		shops = append(shops, shop)
	}
	return shops, rows.Err()
}

func (r *PostgresRepository) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	var shop domain.Shop
	err := scanShop(r.DB.QueryRowContext(ctx, `SELECT `+shopColumns+` FROM shops WHERE id = $1`, id), &shop)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *PostgresRepository) UpdateShop(ctx context.Context, shop *domain.Shop) error {
	return r.DB.QueryRowContext(ctx, `
		UPDATE shops
		SET name=$1, address=$2, phone=$3, description=$4, image_url=$5,
		    avg_prep_time=$6, min_order_amount=$7, updated_at=now()
		WHERE id=$8
		RETURNING created_at, updated_at`,
		shop.Name, shop.Address, shop.Phone, shop.Description, shop.ImageURL,
		shop.AvgPrepTime, shop.MinOrderAmount, shop.ID,
	).Scan(&shop.CreatedAt, &shop.UpdatedAt)
}

func (r *PostgresRepository) SetShopOpen(ctx context.Context, id string, open bool) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE shops SET is_open=$1, updated_at=now() WHERE id=$2`, open, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteShop(ctx context.Context, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM shops WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, cat *domain.MenuCategory) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO menu_categories (id, shop_id, name, sort_order) VALUES ($1, $2, $3, $4)`,
		cat.ID, cat.ShopID, cat.Name, cat.SortOrder)
	return err
}

func (r *PostgresRepository) ListCategories(ctx context.Context, shopID string) ([]domain.MenuCategory, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, shop_id, name, sort_order
		FROM menu_categories
		WHERE shop_id = $1
		ORDER BY sort_order, name`, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.MenuCategory
	for rows.Next() {
		var cat domain.MenuCategory
		if err := rows.Scan(&cat.ID, &cat.ShopID, &cat.Name, &cat.SortOrder); err != nil {
			continue
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_items (id, category_id, name, description, price, image_url, is_sold_out, is_popular, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.CategoryID, item.Name, item.Description, item.Price,
		item.ImageURL, item.IsSoldOut, item.IsPopular, item.SortOrder)
	return err
}

const menuItemColumns = `mi.id, mi.category_id, mi.name, COALESCE(mi.description, ''), mi.price,
	COALESCE(mi.image_url, ''), COALESCE(mi.is_sold_out, false), COALESCE(mi.is_popular, false), mi.sort_order`

func (r *PostgresRepository) ListMenuItems(ctx context.Context, shopID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items mi
		JOIN menu_categories mc ON mi.category_id = mc.id
		WHERE mc.shop_id = $1
		ORDER BY mc.sort_order, mi.sort_order, mi.name`, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Description,
			&item.Price, &item.ImageURL, &item.IsSoldOut, &item.IsPopular, &item.SortOrder); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items mi
		WHERE mi.id = $1`, itemID).
		Scan(&item.ID, &item.CategoryID, &item.Name, &item.Description,
			&item.Price, &item.ImageURL, &item.IsSoldOut, &item.IsPopular, &item.SortOrder)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, image_url=$4, is_popular=$5, sort_order=$6
		WHERE id=$7`,
		item.Name, item.Description, item.Price, item.ImageURL,
		item.IsPopular, item.SortOrder, item.ID)
	return err
}

func (r *PostgresRepository) SetSoldOut(ctx context.Context, itemID string, soldOut bool) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE menu_items SET is_sold_out=$1 WHERE id=$2`, soldOut, itemID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, itemID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM menu_items WHERE id=$1`, itemID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListOptions(ctx context.Context, itemID string) ([]domain.MenuOption, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, item_id, name, price_modifier, COALESCE(is_required, false)
		FROM menu_options
		WHERE item_id = $1
		ORDER BY name`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []domain.MenuOption
	for rows.Next() {
		var opt domain.MenuOption
		if err := rows.Scan(&opt.ID, &opt.ItemID, &opt.Name, &opt.PriceModifier, &opt.IsRequired); err != nil {
			continue
		}
		opts = append(opts, opt)
	}
	return opts, rows.Err()
}

func (r *PostgresRepository) CreateOption(ctx context.Context, opt *domain.MenuOption) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO menu_options (id, item_id, name, price_modifier, is_required) VALUES ($1, $2, $3, $4, $5)`,
		opt.ID, opt.ItemID, opt.Name, opt.PriceModifier, opt.IsRequired)
	return err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS shops (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			phone TEXT,
			description TEXT,
			image_url TEXT,
			is_open BOOLEAN NOT NULL DEFAULT false,
			avg_prep_time INT NOT NULL DEFAULT 15,
			min_order_amount INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_categories (
			id UUID PRIMARY KEY,
			shop_id UUID NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			sort_order INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			category_id UUID NOT NULL REFERENCES menu_categories(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			price INT NOT NULL,
			image_url TEXT,
			is_sold_out BOOLEAN NOT NULL DEFAULT false,
			is_popular BOOLEAN NOT NULL DEFAULT false,
			sort_order INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS menu_options (
			id UUID PRIMARY KEY,
			item_id UUID NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			price_modifier INT NOT NULL DEFAULT 0,
			is_required BOOLEAN NOT NULL DEFAULT false
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
