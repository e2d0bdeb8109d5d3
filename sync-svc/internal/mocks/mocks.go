package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pickup-market/sync-svc/internal/domain"
	"pickup-market/sync-svc/internal/service"
	"pickup-market/sync-svc/internal/storage"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type Store struct {
	mock.Mock
}

func NewStore(t testingT) *Store {
	m := &Store{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Store) ApplyInsert(view *domain.OrderView) {
	m.Called(view)
}

func (m *Store) MergeUpdate(event domain.OrderEvent) bool {
	return m.Called(event).Bool(0)
}

func (m *Store) GetOrder(orderID string) (*domain.OrderView, bool) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.OrderView), args.Bool(1)
}

func (m *Store) ListShopOrders(shopID string) []domain.OrderView {
	args := m.Called(shopID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.OrderView)
}

func (m *Store) ApplyOptimistic(orderID, nextStatus string) (storage.PendingOp, error) {
	args := m.Called(orderID, nextStatus)
	return args.Get(0).(storage.PendingOp), args.Error(1)
}

func (m *Store) Confirm(opID string) error {
	return m.Called(opID).Error(0)
}

func (m *Store) Revert(opID string) error {
	return m.Called(opID).Error(0)
}

var _ service.StoreInterface = (*Store)(nil)

type OrderFetcher struct {
	mock.Mock
}

func NewOrderFetcher(t testingT) *OrderFetcher {
	m := &OrderFetcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderFetcher) FetchOrder(ctx context.Context, orderID string) (*domain.OrderView, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderView), args.Error(1)
}

var _ service.OrderFetcher = (*OrderFetcher)(nil)

type StatusForwarder struct {
	mock.Mock
}

func NewStatusForwarder(t testingT) *StatusForwarder {
	m := &StatusForwarder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StatusForwarder) UpdateStatus(ctx context.Context, orderID, actorID, status, rejectReason string) error {
	return m.Called(ctx, orderID, actorID, status, rejectReason).Error(0)
}

var _ service.StatusForwarder = (*StatusForwarder)(nil)

type Hub struct {
	mock.Mock
}

func NewHub(t testingT) *Hub {
	m := &Hub{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Hub) SubscribeShop(shopID string) *service.Subscription {
	args := m.Called(shopID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*service.Subscription)
}

func (m *Hub) SubscribeOrder(orderID string) *service.Subscription {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*service.Subscription)
}

func (m *Hub) Publish(event domain.OrderEvent) {
	m.Called(event)
}

var _ service.HubInterface = (*Hub)(nil)
