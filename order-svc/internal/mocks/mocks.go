package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pickup-market/order-svc/internal/domain"
	"pickup-market/order-svc/internal/service"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) ListShopOrders(ctx context.Context, shopID string) ([]domain.Order, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, orderID string, from, to domain.OrderStatus, rejectReason string) (bool, error) {
	args := m.Called(ctx, orderID, from, to, rejectReason)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) MarkPaid(ctx context.Context, orderID, paymentKey string) error {
	return m.Called(ctx, orderID, paymentKey).Error(0)
}

func (m *OrderRepository) SaveQRCode(ctx context.Context, orderID string, qr []byte) error {
	return m.Called(ctx, orderID, qr).Error(0)
}

func (m *OrderRepository) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ service.OrderRepository = (*OrderRepository)(nil)

type ShopRepository struct {
	mock.Mock
}

func NewShopRepository(t testingT) *ShopRepository {
	m := &ShopRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ShopRepository) IsShopOpen(ctx context.Context, shopID string) (bool, error) {
	args := m.Called(ctx, shopID)
	return args.Bool(0), args.Error(1)
}

func (m *ShopRepository) IsShopOwner(ctx context.Context, shopID, userID string) (bool, error) {
	args := m.Called(ctx, shopID, userID)
	return args.Bool(0), args.Error(1)
}

var _ service.ShopRepository = (*ShopRepository)(nil)

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

var _ service.EventPublisher = (*EventPublisher)(nil)

type CartStore struct {
	mock.Mock
}

func NewCartStore(t testingT) *CartStore {
	m := &CartStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartStore) Clear(ctx context.Context, customerID string) error {
	return m.Called(ctx, customerID).Error(0)
}

var _ service.CartStore = (*CartStore)(nil)

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(orderNumber string) ([]byte, error) {
	args := m.Called(orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ service.QRGenerator = (*QRGenerator)(nil)
