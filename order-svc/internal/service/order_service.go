package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"pickup-market/order-svc/internal/domain"
)

var (
	ErrEmptyOrder          = errors.New("order has no items")
	ErrInvalidOrderLine    = errors.New("order line has invalid quantity or price")
	ErrInvalidPickupTime   = errors.New("pickup time must be HH:mm")
	ErrTotalMismatch       = errors.New("total price does not match order lines")
	ErrShopClosed          = errors.New("shop is not accepting orders")
	ErrOrderCreationFailed = errors.New("order creation failed after multiple retries")
	ErrOrderNotFound       = errors.New("order not found")
	ErrNotShopOwner        = errors.New("user does not own this order's shop")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrStatusConflict      = errors.New("order status changed concurrently")
)

// quickPickupMinutes is the "as soon as possible" buffer applied when the
// customer skips the slot picker.
const quickPickupMinutes = 15

type CartLine struct {
	ItemID   string              `json:"itemId"`
	Name     string              `json:"name"`
	Price    int                 `json:"price"`
	Quantity int                 `json:"quantity"`
	Options  []domain.ItemOption `json:"options"`
}

type CreateOrderParams struct {
	CustomerID string     `json:"customer_id"`
	ShopID     string     `json:"shop_id"`
	Items      []CartLine `json:"items"`
	TotalPrice int        `json:"total_price"`
	PickupTime string     `json:"pickup_time"`
	Note       string     `json:"note"`
}

type OrderService struct {
	repo      OrderRepository
	shops     ShopRepository
	numbers   *OrderNumberGenerator
	publisher EventPublisher
	qrEncoder QRGenerator
	now       func() time.Time
}

func NewOrderService(repo OrderRepository, shops ShopRepository, numbers *OrderNumberGenerator, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		repo:      repo,
		shops:     shops,
		numbers:   numbers,
		publisher: publisher,
		qrEncoder: qr,
		now:       time.Now,
	}
}

// Create runs the checkout workflow: validate the cart snapshot, generate an
// order number, and commit the header plus all lines in one transaction. The
// total is the cart's snapshot and is never recomputed from live menu prices.
func (s *OrderService) Create(ctx context.Context, params CreateOrderParams) (*domain.Order, error) {
	if len(params.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if params.CustomerID == "" || params.ShopID == "" {
		return nil, fmt.Errorf("%w: missing customer or shop", ErrEmptyOrder)
	}

	sum := 0
	for _, line := range params.Items {
		if line.Quantity < 1 || line.Price < 0 {
			return nil, ErrInvalidOrderLine
		}
		sum += lineSubtotal(line)
	}
	if sum != params.TotalPrice {
		return nil, ErrTotalMismatch
	}

	pickupTime := params.PickupTime
	if pickupTime == "" {
		pickupTime = quickPickupTime(s.now())
	} else if _, err := time.Parse("15:04", pickupTime); err != nil {
		return nil, ErrInvalidPickupTime
	}

	open, err := s.shops.IsShopOpen(ctx, params.ShopID)
	if err != nil {
		return nil, fmt.Errorf("failed to check shop state: %w", err)
	}
	if !open {
		return nil, ErrShopClosed
	}

	for attempt := 0; attempt < MaxOrderNumberAttempts; attempt++ {
		order := &domain.Order{
			ID:          uuid.NewString(),
			OrderNumber: s.numbers.Generate(s.now()),
			CustomerID:  params.CustomerID,
			ShopID:      params.ShopID,
			TotalPrice:  params.TotalPrice,
			Note:        params.Note,
			PickupTime:  pickupTime,
			Status:      domain.StatusPending,
		}
		for _, line := range params.Items {
			order.Items = append(order.Items, domain.OrderItem{
				ID:           uuid.NewString(),
				OrderID:      order.ID,
				ItemID:       line.ItemID,
				ItemName:     line.Name,
				Quantity:     line.Quantity,
				PriceAtOrder: line.Price,
				Options:      line.Options,
			})
		}

		err := s.repo.InsertOrder(ctx, order)
		if errors.Is(err, domain.ErrDuplicateOrderNumber) {
			log.Printf("[order-svc] order number collision on %s, retrying", order.OrderNumber)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}

		s.publish(ctx, domain.EventOrderCreated, order)
		return order, nil
	}

	return nil, ErrOrderCreationFailed
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListShopOrders(ctx context.Context, shopID string) ([]domain.Order, error) {
	return s.repo.ListShopOrders(ctx, shopID)
}

func (s *OrderService) ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.repo.ListCustomerOrders(ctx, customerID)
}

// UpdateStatus applies one owner-driven transition. The write is guarded by
// the currently observed status, so a concurrent transition surfaces as
// ErrStatusConflict instead of silently overwriting.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, actorID string, next domain.OrderStatus, rejectReason string) (*domain.Order, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	owner, err := s.shops.IsShopOwner(ctx, order.ShopID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check shop ownership: %w", err)
	}
	if !owner {
		return nil, ErrNotShopOwner
	}

	if !domain.CanTransition(order.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}
	if next != domain.StatusRejected {
		rejectReason = ""
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, order.Status, next, rejectReason)
	if err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	if !updated {
		return nil, ErrStatusConflict
	}

	order.Status = next
	order.RejectReason = rejectReason

	if next == domain.StatusReady && s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.OrderNumber); err == nil {
			if err := s.repo.SaveQRCode(ctx, orderID, qr); err != nil {
				log.Printf("[order-svc] failed to store pickup QR for order %s: %v", orderID, err)
			}
		} else {
			log.Printf("[order-svc] failed to generate pickup QR for order %s: %v", orderID, err)
		}
	}

	s.publish(ctx, domain.EventOrderUpdated, order)
	return order, nil
}

func (s *OrderService) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	qr, err := s.repo.GetQRCode(ctx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return qr, err
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		ShopID:       order.ShopID,
		OrderNumber:  order.OrderNumber,
		Status:       order.Status,
		RejectReason: order.RejectReason,
		TotalPrice:   order.TotalPrice,
		PickupTime:   order.PickupTime,
		Timestamp:    s.now(),
	})
	if err != nil {
		log.Printf("[order-svc] failed to publish %s for order %s: %v", eventType, order.ID, err)
	}
}

func lineSubtotal(line CartLine) int {
	optionsPrice := 0
	for _, opt := range line.Options {
		optionsPrice += opt.PriceModifier
	}
	return (line.Price + optionsPrice) * line.Quantity
}

func quickPickupTime(now time.Time) string {
	t := now.Add(quickPickupMinutes * time.Minute)
	if rem := t.Minute() % 5; rem != 0 {
		t = t.Add(time.Duration(5-rem) * time.Minute)
	}
	return t.Format("15:04")
}

var _ OrderServiceInterface = (*OrderService)(nil)
