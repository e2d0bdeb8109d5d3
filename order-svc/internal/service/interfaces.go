package service

import (
	"context"

	"pickup-market/order-svc/internal/domain"
)

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListShopOrders(ctx context.Context, shopID string) ([]domain.Order, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, from, to domain.OrderStatus, rejectReason string) (bool, error)
	MarkPaid(ctx context.Context, orderID, paymentKey string) error
	SaveQRCode(ctx context.Context, orderID string, qr []byte) error
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
}

type ShopRepository interface {
	IsShopOpen(ctx context.Context, shopID string) (bool, error)
	IsShopOwner(ctx context.Context, shopID, userID string) (bool, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// CartStore clears the customer's persisted cart once payment is confirmed.
type CartStore interface {
	Clear(ctx context.Context, customerID string) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, params CreateOrderParams) (*domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ListShopOrders(ctx context.Context, shopID string) ([]domain.Order, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, actorID string, next domain.OrderStatus, rejectReason string) (*domain.Order, error)
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
}

type PaymentServiceInterface interface {
	CheckoutURL(ctx context.Context, orderID string) (string, error)
	ConfirmSuccess(ctx context.Context, paymentKey, orderID, amount string) (*domain.Order, error)
}
