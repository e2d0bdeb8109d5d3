package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "pickup-market/sync-svc/internal/api/http"
	"pickup-market/sync-svc/internal/domain"
	"pickup-market/sync-svc/internal/mocks"
	"pickup-market/sync-svc/internal/service"
	"pickup-market/sync-svc/internal/storage"
)

func newLiveRouter(t *testing.T) (*mux.Router, *mocks.Store, *mocks.StatusForwarder) {
	store := mocks.NewStore(t)
	forwarder := mocks.NewStatusForwarder(t)
	r := mux.NewRouter()
	httpapi.NewHandler(service.NewLiveService(store, forwarder), service.NewHub()).RegisterRoutes(r)
	return r, store, forwarder
}

func TestShopQueueHandler(t *testing.T) {
	router, store, _ := newLiveRouter(t)
	store.On("ListShopOrders", "shop-1").Return([]domain.OrderView{
		{ID: "order-1", ShopID: "shop-1", Status: "pending"},
		{ID: "order-2", ShopID: "shop-1", Status: "ready"},
	}).Once()

	req := httptest.NewRequest("GET", "/api/live/shops/shop-1/orders?scope=active", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var views []domain.OrderView
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&views))
	assert.Len(t, views, 1)
	assert.Equal(t, "order-1", views[0].ID)
}

func TestGetLiveOrderHandlerNotTracked(t *testing.T) {
	router, store, _ := newLiveRouter(t)
	store.On("GetOrder", "ghost").Return(nil, false).Once()

	req := httptest.NewRequest("GET", "/api/live/orders/ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatusHandlerRequiresActor(t *testing.T) {
	router, _, _ := newLiveRouter(t)

	req := httptest.NewRequest("PATCH", "/api/live/orders/order-1/status",
		bytes.NewBufferString(`{"status":"accepted"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusHandlerForwardFailure(t *testing.T) {
	router, store, forwarder := newLiveRouter(t)

	op := storage.PendingOp{ID: "op-1", OrderID: "order-1", PriorState: "pending", NextState: "accepted"}
	store.On("ApplyOptimistic", "order-1", "accepted").Return(op, nil).Once()
	forwarder.On("UpdateStatus", mock.Anything, "order-1", "owner-1", "accepted", "").
		Return(assert.AnError).Once()
	store.On("Revert", op.ID).Return(nil).Once()

	req := httptest.NewRequest("PATCH", "/api/live/orders/order-1/status",
		bytes.NewBufferString(`{"status":"accepted"}`))
	req.Header.Set("X-User-ID", "owner-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
