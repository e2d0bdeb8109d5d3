package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"pickup-market/shop-svc/internal/domain"
	"pickup-market/shop-svc/internal/service"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type ShopRepository struct {
	mock.Mock
}

func NewShopRepository(t testingT) *ShopRepository {
	m := &ShopRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ShopRepository) CreateShop(ctx context.Context, shop *domain.Shop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *ShopRepository) ListShops(ctx context.Context) ([]domain.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *ShopRepository) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *ShopRepository) UpdateShop(ctx context.Context, shop *domain.Shop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *ShopRepository) SetShopOpen(ctx context.Context, id string, open bool) (int64, error) {
	args := m.Called(ctx, id, open)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ShopRepository) DeleteShop(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ service.ShopRepository = (*ShopRepository)(nil)

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) CreateCategory(ctx context.Context, cat *domain.MenuCategory) error {
	return m.Called(ctx, cat).Error(0)
}

func (m *MenuRepository) ListCategories(ctx context.Context, shopID string) ([]domain.MenuCategory, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuCategory), args.Error(1)
}

func (m *MenuRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MenuRepository) ListMenuItems(ctx context.Context, shopID string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MenuRepository) GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MenuRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MenuRepository) SetSoldOut(ctx context.Context, itemID string, soldOut bool) (int64, error) {
	args := m.Called(ctx, itemID, soldOut)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MenuRepository) DeleteMenuItem(ctx context.Context, itemID string) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MenuRepository) ListOptions(ctx context.Context, itemID string) ([]domain.MenuOption, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuOption), args.Error(1)
}

func (m *MenuRepository) CreateOption(ctx context.Context, opt *domain.MenuOption) error {
	return m.Called(ctx, opt).Error(0)
}

var _ service.MenuRepository = (*MenuRepository)(nil)

type ShopService struct {
	mock.Mock
}

func NewShopService(t testingT) *ShopService {
	m := &ShopService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ShopService) Create(ctx context.Context, shop *domain.Shop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *ShopService) List(ctx context.Context) ([]domain.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *ShopService) Get(ctx context.Context, id string) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *ShopService) Update(ctx context.Context, shop *domain.Shop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *ShopService) SetOpen(ctx context.Context, id string, open bool) error {
	return m.Called(ctx, id, open).Error(0)
}

func (m *ShopService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ShopService) PickupSlots(ctx context.Context, shopID string, now time.Time, disabled []string) ([]domain.Slot, error) {
	args := m.Called(ctx, shopID, now, disabled)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

var _ service.ShopServiceInterface = (*ShopService)(nil)

type MenuService struct {
	mock.Mock
}

func NewMenuService(t testingT) *MenuService {
	m := &MenuService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuService) CreateCategory(ctx context.Context, cat *domain.MenuCategory) error {
	return m.Called(ctx, cat).Error(0)
}

func (m *MenuService) ListCategories(ctx context.Context, shopID string) ([]domain.MenuCategory, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuCategory), args.Error(1)
}

func (m *MenuService) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MenuService) ListItems(ctx context.Context, shopID string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MenuService) GetItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MenuService) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MenuService) SetSoldOut(ctx context.Context, itemID string, soldOut bool) error {
	return m.Called(ctx, itemID, soldOut).Error(0)
}

func (m *MenuService) DeleteItem(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *MenuService) AddOption(ctx context.Context, opt *domain.MenuOption) error {
	return m.Called(ctx, opt).Error(0)
}

var _ service.MenuServiceInterface = (*MenuService)(nil)
