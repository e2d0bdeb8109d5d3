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

	httpapi "pickup-market/cart-svc/internal/api/http"
	"pickup-market/cart-svc/internal/domain"
	"pickup-market/cart-svc/internal/mocks"
	"pickup-market/cart-svc/internal/service"
)

func newCartRouter(t *testing.T) (*mux.Router, *mocks.CartService) {
	carts := mocks.NewCartService(t)
	r := mux.NewRouter()
	httpapi.NewHandler(carts).RegisterRoutes(r)
	return r, carts
}

func TestAddItemHandler(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		body      string
		setupMock func(*mocks.CartService)
		wantCode  int
	}{
		{
			name:   "valid request",
			userID: "user-1",
			body:   `{"shopId":"shop-1","shopName":"Han River Kitchen","item":{"itemId":"item-1","name":"Bulgogi Bowl","price":5000,"quantity":2}}`,
			setupMock: func(m *mocks.CartService) {
				m.On("AddItem", mock.Anything, "user-1", "shop-1", "Han River Kitchen", mock.AnythingOfType("domain.CartItem")).
					Return(&domain.Cart{
						ShopID: "shop-1", ShopName: "Han River Kitchen",
						Items: []domain.CartItem{{ItemID: "item-1", Price: 5000, Quantity: 2}},
					}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing user header",
			userID:    "",
			body:      `{"shopId":"shop-1","item":{"itemId":"item-1","quantity":1}}`,
			setupMock: func(m *mocks.CartService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "sold out",
			userID: "user-1",
			body:   `{"shopId":"shop-1","shopName":"Han River Kitchen","item":{"itemId":"item-2","quantity":1}}`,
			setupMock: func(m *mocks.CartService) {
				m.On("AddItem", mock.Anything, "user-1", "shop-1", "Han River Kitchen", mock.AnythingOfType("domain.CartItem")).
					Return(nil, service.ErrItemSoldOut).Once()
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, carts := newCartRouter(t)
			testCase.setupMock(carts)

			req := httptest.NewRequest("POST", "/api/cart/items", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			if testCase.userID != "" {
				req.Header.Set("X-User-ID", testCase.userID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestGetCartHandlerComputesTotals(t *testing.T) {
	router, carts := newCartRouter(t)
	carts.On("Get", mock.Anything, "user-1").Return(&domain.Cart{
		ShopID: "shop-1", ShopName: "Han River Kitchen",
		Items: []domain.CartItem{
			{ItemID: "item-1", Price: 5000, Quantity: 2},
			{ItemID: "item-2", Price: 8000, Quantity: 1},
		},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		TotalPrice int `json:"totalPrice"`
		TotalItems int `json:"totalItems"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 18000, body.TotalPrice)
	assert.Equal(t, 3, body.TotalItems)
}

func TestClearCartHandler(t *testing.T) {
	router, carts := newCartRouter(t)
	carts.On("Clear", mock.Anything, "user-1").Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/api/cart", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateQuantityHandler(t *testing.T) {
	router, carts := newCartRouter(t)
	carts.On("UpdateQuantity", mock.Anything, "user-1", "item-1", 4).
		Return(&domain.Cart{
			ShopID: "shop-1",
			Items:  []domain.CartItem{{ItemID: "item-1", Price: 5000, Quantity: 4}},
		}, nil).Once()

	req := httptest.NewRequest("PATCH", "/api/cart/items/item-1", bytes.NewBufferString(`{"quantity":4}`))
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
