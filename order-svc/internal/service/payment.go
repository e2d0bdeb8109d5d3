package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"pickup-market/order-svc/internal/domain"
)

var (
	ErrPaymentKeyMissing     = errors.New("payment client key is not configured")
	ErrPaymentParams         = errors.New("payment return is missing required parameters")
	ErrPaymentAmountMismatch = errors.New("payment amount does not match order total")
)

// PaymentService hands checkout off to the hosted payment page and reconciles
// the return leg. Success is trusted from the return parameters alone; there
// is no gateway-side verification call.
type PaymentService struct {
	repo         OrderRepository
	carts        CartStore
	clientKey    string
	checkoutBase string
	returnBase   string
}

func NewPaymentService(repo OrderRepository, carts CartStore, clientKey, checkoutBase, returnBase string) *PaymentService {
	return &PaymentService{
		repo:         repo,
		carts:        carts,
		clientKey:    clientKey,
		checkoutBase: checkoutBase,
		returnBase:   returnBase,
	}
}

// CheckoutURL builds the hosted checkout redirect for a pending order.
func (s *PaymentService) CheckoutURL(ctx context.Context, orderID string) (string, error) {
	if s.clientKey == "" {
		return "", ErrPaymentKeyMissing
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to load order for checkout: %w", err)
	}

	query := url.Values{}
	query.Set("clientKey", s.clientKey)
	query.Set("amount", strconv.Itoa(order.TotalPrice))
	query.Set("orderId", order.ID)
	query.Set("orderName", "Pickup order "+order.OrderNumber)
	query.Set("successUrl", s.returnBase+"/payment/success")
	query.Set("failUrl", s.returnBase+"/payment/fail")

	return s.checkoutBase + "?" + query.Encode(), nil
}

// ConfirmSuccess processes the success return leg. The order is treated as
// paid only when paymentKey, orderId and amount all arrive and the amount
// matches the stored total.
func (s *PaymentService) ConfirmSuccess(ctx context.Context, paymentKey, orderID, amount string) (*domain.Order, error) {
	if paymentKey == "" || orderID == "" || amount == "" {
		return nil, ErrPaymentParams
	}
	paid, err := strconv.Atoi(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: bad amount %q", ErrPaymentParams, amount)
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order for payment: %w", err)
	}
	if paid != order.TotalPrice {
		return nil, ErrPaymentAmountMismatch
	}

	if err := s.repo.MarkPaid(ctx, orderID, paymentKey); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if s.carts != nil {
		if err := s.carts.Clear(ctx, order.CustomerID); err != nil {
			log.Printf("[order-svc] failed to clear cart for customer %s: %v", order.CustomerID, err)
		}
	}

	order.PaymentKey = paymentKey
	return order, nil
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
