package service

import (
	"context"
	"errors"
	"fmt"

	"pickup-market/cart-svc/internal/domain"
)

var (
	ErrItemSoldOut     = errors.New("menu item is sold out")
	ErrMenuItemMissing = errors.New("menu item does not exist")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

type CartStore interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, userID string, cart *domain.Cart) error
	Delete(ctx context.Context, userID string) error
}

type MenuRepository interface {
	GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItemInfo, error)
}

type CartServiceInterface interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, shopID, shopName string, item domain.CartItem) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type CartService struct {
	store CartStore
	menu  MenuRepository
}

func NewCartService(store CartStore, menu MenuRepository) *CartService {
	return &CartService{store: store, menu: menu}
}

func (s *CartService) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.store.Get(ctx, userID)
}

func (s *CartService) AddItem(ctx context.Context, userID, shopID, shopName string, item domain.CartItem) (*domain.Cart, error) {
	if item.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	menuItem, err := s.menu.GetMenuItem(ctx, item.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up menu item: %w", err)
	}
	if menuItem == nil {
		return nil, ErrMenuItemMissing
	}
	if menuItem.IsSoldOut {
		return nil, ErrItemSoldOut
	}

	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(shopID, shopName, item)
	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, error) {
	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.UpdateQuantity(itemID, quantity)
	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error) {
	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(itemID)
	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, userID)
}

var _ CartServiceInterface = (*CartService)(nil)
