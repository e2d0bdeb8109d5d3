package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pickup-market/sync-svc/internal/domain"
	"pickup-market/sync-svc/internal/storage"
)

func trackedOrder() *domain.OrderView {
	return &domain.OrderView{
		ID:          "order-1",
		OrderNumber: "20260314100500-A1B2",
		CustomerID:  "user-1",
		ShopID:      "shop-1",
		ShopName:    "Han River Kitchen",
		TotalPrice:  18000,
		Status:      "pending",
		CreatedAt:   time.Date(2026, 3, 14, 10, 5, 0, 0, time.UTC),
		Items: []domain.OrderLine{
			{ItemID: "item-1", ItemName: "Bulgogi Bowl", Quantity: 2, PriceAtOrder: 5000},
			{ItemID: "item-2", ItemName: "Kimchi Stew", Quantity: 1, PriceAtOrder: 8000},
		},
	}
}

func TestMergeUpdatePreservesItemsAndShopInfo(t *testing.T) {
	store := storage.NewLiveStore()
	store.ApplyInsert(trackedOrder())

	merged := store.MergeUpdate(domain.OrderEvent{
		Type:      domain.EventOrderUpdated,
		OrderID:   "order-1",
		ShopID:    "shop-1",
		Status:    "accepted",
		Timestamp: time.Date(2026, 3, 14, 10, 6, 0, 0, time.UTC),
	})
	assert.True(t, merged)

	view, ok := store.GetOrder("order-1")
	assert.True(t, ok)
	assert.Equal(t, "accepted", view.Status)
	assert.Equal(t, "Han River Kitchen", view.ShopName)
	assert.Len(t, view.Items, 2)
	assert.Equal(t, 18000, view.TotalPrice)
}

func TestMergeUpdateUnknownOrder(t *testing.T) {
	store := storage.NewLiveStore()

	merged := store.MergeUpdate(domain.OrderEvent{OrderID: "ghost", Status: "accepted"})
	assert.False(t, merged)
}

func TestMergeUpdateCarriesRejectReason(t *testing.T) {
	store := storage.NewLiveStore()
	store.ApplyInsert(trackedOrder())

	store.MergeUpdate(domain.OrderEvent{
		OrderID:      "order-1",
		Status:       "rejected",
		RejectReason: "out of stock",
	})

	view, _ := store.GetOrder("order-1")
	assert.Equal(t, "rejected", view.Status)
	assert.Equal(t, "out of stock", view.RejectReason)
}

func TestListShopOrdersNewestFirst(t *testing.T) {
	store := storage.NewLiveStore()

	older := trackedOrder()
	newer := trackedOrder()
	newer.ID = "order-2"
	newer.CreatedAt = older.CreatedAt.Add(10 * time.Minute)
	other := trackedOrder()
	other.ID = "order-3"
	other.ShopID = "shop-2"

	store.ApplyInsert(older)
	store.ApplyInsert(newer)
	store.ApplyInsert(other)

	views := store.ListShopOrders("shop-1")
	assert.Len(t, views, 2)
	assert.Equal(t, "order-2", views[0].ID)
	assert.Equal(t, "order-1", views[1].ID)
}

func TestApplyOptimisticAndConfirm(t *testing.T) {
	store := storage.NewLiveStore()
	store.ApplyInsert(trackedOrder())

	op, err := store.ApplyOptimistic("order-1", "accepted")
	assert.NoError(t, err)
	assert.Equal(t, "pending", op.PriorState)

	view, _ := store.GetOrder("order-1")
	assert.Equal(t, "accepted", view.Status)

	assert.NoError(t, store.Confirm(op.ID))
	assert.ErrorIs(t, store.Confirm(op.ID), storage.ErrPendingOpGone)
}

func TestRevertRestoresPriorStatus(t *testing.T) {
	store := storage.NewLiveStore()
	store.ApplyInsert(trackedOrder())

	op, err := store.ApplyOptimistic("order-1", "accepted")
	assert.NoError(t, err)

	assert.NoError(t, store.Revert(op.ID))

	view, _ := store.GetOrder("order-1")
	assert.Equal(t, "pending", view.Status)
}

func TestApplyOptimisticUnknownOrder(t *testing.T) {
	store := storage.NewLiveStore()

	_, err := store.ApplyOptimistic("ghost", "accepted")
	assert.ErrorIs(t, err, storage.ErrOrderUnknown)
}

func TestGetOrderReturnsCopy(t *testing.T) {
	store := storage.NewLiveStore()
	store.ApplyInsert(trackedOrder())

	view, _ := store.GetOrder("order-1")
	view.Status = "mutated"

	fresh, _ := store.GetOrder("order-1")
	assert.Equal(t, "pending", fresh.Status)
}
