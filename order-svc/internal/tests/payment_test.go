package tests

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"pickup-market/order-svc/internal/domain"
	"pickup-market/order-svc/internal/mocks"
	"pickup-market/order-svc/internal/service"
)

func paidableOrder() *domain.Order {
	return &domain.Order{
		ID: "order-1", OrderNumber: "20260314092653-AB12",
		CustomerID: "customer-1", ShopID: "shop-1",
		Status: domain.StatusPending, TotalPrice: 18000,
	}
}

func TestCheckoutURL(t *testing.T) {
	ctx := context.Background()

	t.Run("builds_hosted_redirect", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewPaymentService(repo, nil, "test_ck_123", "https://pay.example.com/checkout", "http://localhost:8080")
		repo.On("GetOrder", ctx, "order-1").Return(paidableOrder(), nil).Once()

		redirect, err := svc.CheckoutURL(ctx, "order-1")
		assert.NoError(t, err)

		parsed, err := url.Parse(redirect)
		assert.NoError(t, err)
		assert.Equal(t, "pay.example.com", parsed.Host)
		assert.Equal(t, "18000", parsed.Query().Get("amount"))
		assert.Equal(t, "order-1", parsed.Query().Get("orderId"))
		assert.Equal(t, "http://localhost:8080/payment/success", parsed.Query().Get("successUrl"))
		assert.Equal(t, "http://localhost:8080/payment/fail", parsed.Query().Get("failUrl"))
	})

	t.Run("missing_client_key_blocks_checkout", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewPaymentService(repo, nil, "", "https://pay.example.com/checkout", "http://localhost:8080")

		_, err := svc.CheckoutURL(ctx, "order-1")
		assert.ErrorIs(t, err, service.ErrPaymentKeyMissing)
	})
}

func TestConfirmSuccess(t *testing.T) {
	ctx := context.Background()

	t.Run("marks_paid_and_clears_cart", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		carts := mocks.NewCartStore(t)
		svc := service.NewPaymentService(repo, carts, "test_ck_123", "https://pay.example.com/checkout", "http://localhost:8080")

		repo.On("GetOrder", ctx, "order-1").Return(paidableOrder(), nil).Once()
		repo.On("MarkPaid", ctx, "order-1", "pk_abc").Return(nil).Once()
		carts.On("Clear", ctx, "customer-1").Return(nil).Once()

		order, err := svc.ConfirmSuccess(ctx, "pk_abc", "order-1", "18000")
		assert.NoError(t, err)
		assert.Equal(t, "pk_abc", order.PaymentKey)
		assert.Equal(t, domain.StatusPending, order.Status)
	})

	t.Run("missing_params", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewPaymentService(repo, nil, "test_ck_123", "https://pay.example.com/checkout", "http://localhost:8080")

		_, err := svc.ConfirmSuccess(ctx, "", "order-1", "18000")
		assert.ErrorIs(t, err, service.ErrPaymentParams)

		_, err = svc.ConfirmSuccess(ctx, "pk_abc", "", "18000")
		assert.ErrorIs(t, err, service.ErrPaymentParams)

		_, err = svc.ConfirmSuccess(ctx, "pk_abc", "order-1", "")
		assert.ErrorIs(t, err, service.ErrPaymentParams)

		_, err = svc.ConfirmSuccess(ctx, "pk_abc", "order-1", "not-a-number")
		assert.ErrorIs(t, err, service.ErrPaymentParams)
	})

	t.Run("amount_mismatch", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewPaymentService(repo, nil, "test_ck_123", "https://pay.example.com/checkout", "http://localhost:8080")
		repo.On("GetOrder", ctx, "order-1").Return(paidableOrder(), nil).Once()

		_, err := svc.ConfirmSuccess(ctx, "pk_abc", "order-1", "17000")
		assert.ErrorIs(t, err, service.ErrPaymentAmountMismatch)
	})

	t.Run("cart_clear_failure_does_not_fail_payment", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		carts := mocks.NewCartStore(t)
		svc := service.NewPaymentService(repo, carts, "test_ck_123", "https://pay.example.com/checkout", "http://localhost:8080")

		repo.On("GetOrder", ctx, "order-1").Return(paidableOrder(), nil).Once()
		repo.On("MarkPaid", ctx, "order-1", "pk_abc").Return(nil).Once()
		carts.On("Clear", ctx, "customer-1").Return(assert.AnError).Once()

		_, err := svc.ConfirmSuccess(ctx, "pk_abc", "order-1", "18000")
		assert.NoError(t, err)
	})
}
