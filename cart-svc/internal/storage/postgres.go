package storage

import (
	"context"
	"database/sql"
	"errors"

	"pickup-market/cart-svc/internal/domain"
)

type PostgresMenuRepository struct {
	DB *sql.DB
}

func NewPostgresMenuRepository(db *sql.DB) *PostgresMenuRepository {
	return &PostgresMenuRepository{DB: db}
}

// GetMenuItem returns nil without error when the item does not exist.
func (r *PostgresMenuRepository) GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItemInfo, error) {
	var info domain.MenuItemInfo
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, price, COALESCE(is_sold_out, false)
		FROM menu_items
		WHERE id = $1
	`, itemID).Scan(&info.ID, &info.Name, &info.Price, &info.IsSoldOut)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}
