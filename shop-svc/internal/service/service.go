package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"pickup-market/shop-svc/internal/domain"
)

var (
	ErrShopNotFound     = errors.New("shop not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidShop      = errors.New("invalid shop payload")
	ErrInvalidMenuItem  = errors.New("invalid menu item payload")
)

type ShopRepository interface {
	CreateShop(ctx context.Context, shop *domain.Shop) error
	ListShops(ctx context.Context) ([]domain.Shop, error)
	GetShop(ctx context.Context, id string) (*domain.Shop, error)
	UpdateShop(ctx context.Context, shop *domain.Shop) error
	SetShopOpen(ctx context.Context, id string, open bool) (int64, error)
	DeleteShop(ctx context.Context, id string) (int64, error)
}

type MenuRepository interface {
	CreateCategory(ctx context.Context, cat *domain.MenuCategory) error
	ListCategories(ctx context.Context, shopID string) ([]domain.MenuCategory, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context, shopID string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	SetSoldOut(ctx context.Context, itemID string, soldOut bool) (int64, error)
	DeleteMenuItem(ctx context.Context, itemID string) (int64, error)
	ListOptions(ctx context.Context, itemID string) ([]domain.MenuOption, error)
	CreateOption(ctx context.Context, opt *domain.MenuOption) error
}

type ShopServiceInterface interface {
	Create(ctx context.Context, shop *domain.Shop) error
	List(ctx context.Context) ([]domain.Shop, error)
	Get(ctx context.Context, id string) (*domain.Shop, error)
	Update(ctx context.Context, shop *domain.Shop) error
	SetOpen(ctx context.Context, id string, open bool) error
	Delete(ctx context.Context, id string) error
	PickupSlots(ctx context.Context, shopID string, now time.Time, disabled []string) ([]domain.Slot, error)
}

type MenuServiceInterface interface {
	CreateCategory(ctx context.Context, cat *domain.MenuCategory) error
	ListCategories(ctx context.Context, shopID string) ([]domain.MenuCategory, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	ListItems(ctx context.Context, shopID string) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, itemID string) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	SetSoldOut(ctx context.Context, itemID string, soldOut bool) error
	DeleteItem(ctx context.Context, itemID string) error
	AddOption(ctx context.Context, opt *domain.MenuOption) error
}

type ShopService struct {
	repo ShopRepository
}

func NewShopService(repo ShopRepository) *ShopService {
	return &ShopService{repo: repo}
}

func (s *ShopService) Create(ctx context.Context, shop *domain.Shop) error {
	if shop.Name == "" {
		return ErrInvalidShop
	}
	if shop.ID == "" {
		shop.ID = uuid.NewString()
	}
	if shop.AvgPrepTime <= 0 {
		shop.AvgPrepTime = DefaultPrepMinutes
	}
	return s.repo.CreateShop(ctx, shop)
}

func (s *ShopService) List(ctx context.Context) ([]domain.Shop, error) {
	return s.repo.ListShops(ctx)
}

func (s *ShopService) Get(ctx context.Context, id string) (*domain.Shop, error) {
	shop, err := s.repo.GetShop(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShopNotFound
	}
	return shop, err
}

func (s *ShopService) Update(ctx context.Context, shop *domain.Shop) error {
	if shop.ID == "" || shop.Name == "" {
		return ErrInvalidShop
	}
	return s.repo.UpdateShop(ctx, shop)
}

func (s *ShopService) SetOpen(ctx context.Context, id string, open bool) error {
	affected, err := s.repo.SetShopOpen(ctx, id, open)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrShopNotFound
	}
	return nil
}

func (s *ShopService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.DeleteShop(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrShopNotFound
	}
	return nil
}

// PickupSlots offers pickup times based on the shop's average prep time.
func (s *ShopService) PickupSlots(ctx context.Context, shopID string, now time.Time, disabled []string) ([]domain.Slot, error) {
	shop, err := s.Get(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return GenerateSlots(now, shop.AvgPrepTime, DefaultSlotInterval, DefaultSlotCount, disabled), nil
}

var _ ShopServiceInterface = (*ShopService)(nil)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) CreateCategory(ctx context.Context, cat *domain.MenuCategory) error {
	if cat.ShopID == "" || cat.Name == "" {
		return ErrInvalidMenuItem
	}
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	return s.repo.CreateCategory(ctx, cat)
}

func (s *MenuService) ListCategories(ctx context.Context, shopID string) ([]domain.MenuCategory, error) {
	return s.repo.ListCategories(ctx, shopID)
}

func (s *MenuService) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	if item.CategoryID == "" || item.Name == "" || item.Price < 0 {
		return ErrInvalidMenuItem
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return s.repo.CreateMenuItem(ctx, item)
}

func (s *MenuService) ListItems(ctx context.Context, shopID string) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx, shopID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		opts, err := s.repo.ListOptions(ctx, items[i].ID)
		if err != nil {
			continue
		}
		items[i].Options = opts
	}
	return items, nil
}

func (s *MenuService) GetItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	opts, err := s.repo.ListOptions(ctx, item.ID)
	if err == nil {
		item.Options = opts
	}
	return item, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	if item.ID == "" || item.Name == "" || item.Price < 0 {
		return ErrInvalidMenuItem
	}
	return s.repo.UpdateMenuItem(ctx, item)
}

func (s *MenuService) SetSoldOut(ctx context.Context, itemID string, soldOut bool) error {
	affected, err := s.repo.SetSoldOut(ctx, itemID, soldOut)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (s *MenuService) DeleteItem(ctx context.Context, itemID string) error {
	affected, err := s.repo.DeleteMenuItem(ctx, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (s *MenuService) AddOption(ctx context.Context, opt *domain.MenuOption) error {
	if opt.ItemID == "" || opt.Name == "" {
		return ErrInvalidMenuItem
	}
	if opt.ID == "" {
		opt.ID = uuid.NewString()
	}
	return s.repo.CreateOption(ctx, opt)
}

var _ MenuServiceInterface = (*MenuService)(nil)
