package service

import (
	"context"

	"pickup-market/sync-svc/internal/domain"
	"pickup-market/sync-svc/internal/storage"
)

type StoreInterface interface {
	ApplyInsert(view *domain.OrderView)
	MergeUpdate(event domain.OrderEvent) bool
	GetOrder(orderID string) (*domain.OrderView, bool)
	ListShopOrders(shopID string) []domain.OrderView
	ApplyOptimistic(orderID, nextStatus string) (storage.PendingOp, error)
	Confirm(opID string) error
	Revert(opID string) error
}

type OrderFetcher interface {
	FetchOrder(ctx context.Context, orderID string) (*domain.OrderView, error)
}

type StatusForwarder interface {
	UpdateStatus(ctx context.Context, orderID, actorID, status, rejectReason string) error
}

type HubInterface interface {
	SubscribeShop(shopID string) *Subscription
	SubscribeOrder(orderID string) *Subscription
	Publish(event domain.OrderEvent)
}

type LiveServiceInterface interface {
	ShopQueue(shopID, scope string) []domain.OrderView
	Order(orderID string) (*domain.OrderView, error)
	UpdateStatus(ctx context.Context, orderID, actorID, status, rejectReason string) (*domain.OrderView, error)
}

var _ StoreInterface = (*storage.LiveStore)(nil)
var _ OrderFetcher = (*storage.OrderClient)(nil)
var _ StatusForwarder = (*storage.OrderClient)(nil)
