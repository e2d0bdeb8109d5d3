package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pickup-market/order-svc/internal/domain"
	"pickup-market/order-svc/internal/service"
)

type OrderService struct {
	mock.Mock
}

func NewOrderService(t testingT) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderService) Create(ctx context.Context, params service.CreateOrderParams) (*domain.Order, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderService) ListShopOrders(ctx context.Context, shopID string) ([]domain.Order, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderService) ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderService) UpdateStatus(ctx context.Context, orderID, actorID string, next domain.OrderStatus, rejectReason string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, actorID, next, rejectReason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderService) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ service.OrderServiceInterface = (*OrderService)(nil)

type PaymentService struct {
	mock.Mock
}

func NewPaymentService(t testingT) *PaymentService {
	m := &PaymentService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentService) CheckoutURL(ctx context.Context, orderID string) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

func (m *PaymentService) ConfirmSuccess(ctx context.Context, paymentKey, orderID, amount string) (*domain.Order, error) {
	args := m.Called(ctx, paymentKey, orderID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

var _ service.PaymentServiceInterface = (*PaymentService)(nil)
