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

	httpapi "pickup-market/shop-svc/internal/api/http"
	"pickup-market/shop-svc/internal/domain"
	"pickup-market/shop-svc/internal/mocks"
	"pickup-market/shop-svc/internal/service"
)

func newShopRouter(t *testing.T) (*mux.Router, *mocks.ShopService, *mocks.MenuService) {
	shops := mocks.NewShopService(t)
	menus := mocks.NewMenuService(t)
	r := mux.NewRouter()
	httpapi.NewHandler(shops, menus).RegisterRoutes(r)
	return r, shops, menus
}

func TestListShopsHandler(t *testing.T) {
	router, shops, _ := newShopRouter(t)
	shops.On("List", mock.Anything).Return([]domain.Shop{
		{ID: "shop-1", Name: "Han River Kitchen", IsOpen: true},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/shops", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []domain.Shop
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, "Han River Kitchen", body[0].Name)
}

func TestGetShopHandlerNotFound(t *testing.T) {
	router, shops, _ := newShopRouter(t)
	shops.On("Get", mock.Anything, "missing").Return(nil, service.ErrShopNotFound).Once()

	req := httptest.NewRequest("GET", "/api/shops/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateShopHandler(t *testing.T) {
	router, shops, _ := newShopRouter(t)
	shops.On("Create", mock.Anything, mock.AnythingOfType("*domain.Shop")).Return(nil).Once()

	body := `{"name":"Han River Kitchen","address":"12 Riverside Rd","avg_prep_time":20}`
	req := httptest.NewRequest("POST", "/api/shops", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSetShopOpenHandler(t *testing.T) {
	router, shops, _ := newShopRouter(t)
	shops.On("SetOpen", mock.Anything, "shop-1", false).Return(nil).Once()

	req := httptest.NewRequest("PATCH", "/api/shops/shop-1/open", bytes.NewBufferString(`{"isOpen":false}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPickupSlotsHandlerParsesDisabled(t *testing.T) {
	router, shops, _ := newShopRouter(t)
	shops.On("PickupSlots", mock.Anything, "shop-1", mock.AnythingOfType("time.Time"), []string{"10:25", "10:40"}).
		Return([]domain.Slot{{Time: "10:20", IsEarliest: true}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/shops/shop-1/slots?disabled=10:25,10:40", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var slots []domain.Slot
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&slots))
	assert.Len(t, slots, 1)
	assert.True(t, slots[0].IsEarliest)
}

func TestListMenuHandler(t *testing.T) {
	router, _, menus := newShopRouter(t)
	menus.On("ListItems", mock.Anything, "shop-1").Return([]domain.MenuItem{
		{ID: "item-1", Name: "Bulgogi Bowl", Price: 9000, IsPopular: true},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/shops/shop-1/menu", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetSoldOutHandler(t *testing.T) {
	router, _, menus := newShopRouter(t)
	menus.On("SetSoldOut", mock.Anything, "item-1", true).Return(nil).Once()

	req := httptest.NewRequest("PATCH", "/api/menu-items/item-1/sold-out", bytes.NewBufferString(`{"isSoldOut":true}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateMenuItemHandlerBadPayload(t *testing.T) {
	router, _, menus := newShopRouter(t)
	menus.On("CreateItem", mock.Anything, mock.AnythingOfType("*domain.MenuItem")).
		Return(service.ErrInvalidMenuItem).Once()

	req := httptest.NewRequest("POST", "/api/menu-items", bytes.NewBufferString(`{"name":"No category"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
