package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pickup-market/cart-svc/internal/domain"
	"pickup-market/cart-svc/internal/service"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type CartStore struct {
	mock.Mock
}

func NewCartStore(t testingT) *CartStore {
	m := &CartStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartStore) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *CartStore) Save(ctx context.Context, userID string, cart *domain.Cart) error {
	return m.Called(ctx, userID, cart).Error(0)
}

func (m *CartStore) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var _ service.CartStore = (*CartStore)(nil)

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItemInfo, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItemInfo), args.Error(1)
}

var _ service.MenuRepository = (*MenuRepository)(nil)

type CartService struct {
	mock.Mock
}

func NewCartService(t testingT) *CartService {
	m := &CartService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartService) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, userID, shopID, shopName string, item domain.CartItem) (*domain.Cart, error) {
	args := m.Called(ctx, userID, shopID, shopName, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *CartService) Clear(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var _ service.CartServiceInterface = (*CartService)(nil)
