package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pickup-market/sync-svc/internal/domain"
	"pickup-market/sync-svc/internal/mocks"
	"pickup-market/sync-svc/internal/service"
	"pickup-market/sync-svc/internal/storage"
)

func TestUpdateStatusConfirmsOnSuccess(t *testing.T) {
	store := mocks.NewStore(t)
	forwarder := mocks.NewStatusForwarder(t)
	live := service.NewLiveService(store, forwarder)

	op := storage.PendingOp{ID: "op-1", OrderID: "order-1", PriorState: "pending", NextState: "accepted"}
	store.On("ApplyOptimistic", "order-1", "accepted").Return(op, nil).Once()
	forwarder.On("UpdateStatus", mock.Anything, "order-1", "owner-1", "accepted", "").Return(nil).Once()
	store.On("Confirm", "op-1").Return(nil).Once()
	store.On("GetOrder", "order-1").Return(&domain.OrderView{ID: "order-1", Status: "accepted"}, true).Once()

	view, err := live.UpdateStatus(context.Background(), "order-1", "owner-1", "accepted", "")
	assert.NoError(t, err)
	assert.Equal(t, "accepted", view.Status)
}

func TestUpdateStatusRevertsWhenForwardFails(t *testing.T) {
	store := mocks.NewStore(t)
	forwarder := mocks.NewStatusForwarder(t)
	live := service.NewLiveService(store, forwarder)

	op := storage.PendingOp{ID: "op-1", OrderID: "order-1", PriorState: "pending", NextState: "accepted"}
	store.On("ApplyOptimistic", "order-1", "accepted").Return(op, nil).Once()
	forwarder.On("UpdateStatus", mock.Anything, "order-1", "owner-1", "accepted", "").
		Return(errors.New("409 conflict")).Once()
	store.On("Revert", "op-1").Return(nil).Once()

	_, err := live.UpdateStatus(context.Background(), "order-1", "owner-1", "accepted", "")
	assert.Error(t, err)
	store.AssertNotCalled(t, "Confirm", mock.Anything)
}

func TestUpdateStatusUntrackedOrder(t *testing.T) {
	store := mocks.NewStore(t)
	forwarder := mocks.NewStatusForwarder(t)
	live := service.NewLiveService(store, forwarder)

	store.On("ApplyOptimistic", "ghost", "accepted").
		Return(storage.PendingOp{}, storage.ErrOrderUnknown).Once()

	_, err := live.UpdateStatus(context.Background(), "ghost", "owner-1", "accepted", "")
	assert.ErrorIs(t, err, service.ErrOrderNotTracked)
	forwarder.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestShopQueueScopeFilter(t *testing.T) {
	store := mocks.NewStore(t)
	live := service.NewLiveService(store, mocks.NewStatusForwarder(t))

	views := []domain.OrderView{
		{ID: "order-1", Status: "pending"},
		{ID: "order-2", Status: "cooking"},
		{ID: "order-3", Status: "ready"},
		{ID: "order-4", Status: "rejected"},
	}
	store.On("ListShopOrders", "shop-1").Return(views).Times(3)

	assert.Len(t, live.ShopQueue("shop-1", ""), 4)

	active := live.ShopQueue("shop-1", "active")
	assert.Len(t, active, 2)
	assert.Equal(t, "order-1", active[0].ID)

	done := live.ShopQueue("shop-1", "done")
	assert.Len(t, done, 2)
	assert.Equal(t, "order-3", done[0].ID)
}

func TestOrderLookup(t *testing.T) {
	store := mocks.NewStore(t)
	live := service.NewLiveService(store, mocks.NewStatusForwarder(t))

	store.On("GetOrder", "order-1").Return(&domain.OrderView{ID: "order-1"}, true).Once()
	store.On("GetOrder", "ghost").Return(nil, false).Once()

	view, err := live.Order("order-1")
	assert.NoError(t, err)
	assert.Equal(t, "order-1", view.ID)

	_, err = live.Order("ghost")
	assert.ErrorIs(t, err, service.ErrOrderNotTracked)
}
