package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"pickup-market/cart-svc/internal/domain"
	"pickup-market/cart-svc/internal/service"
)

type Handler struct {
	Carts service.CartServiceInterface
}

func NewHandler(carts service.CartServiceInterface) *Handler {
	return &Handler{Carts: carts}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", h.updateQuantity).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeItem).Methods("DELETE")
}

func userID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}

func (h *Handler) writeCart(w http.ResponseWriter, cart *domain.Cart) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"shopId":     cart.ShopID,
		"shopName":   cart.ShopName,
		"items":      cart.Items,
		"totalPrice": cart.TotalPrice(),
		"totalItems": cart.TotalItems(),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		http.Error(w, "Missing X-User-ID", http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.Get(r.Context(), user)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCart(w, cart)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		http.Error(w, "Missing X-User-ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		ShopID   string          `json:"shopId"`
		ShopName string          `json:"shopName"`
		Item     domain.CartItem `json:"item"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.ShopID == "" || payload.Item.ItemID == "" {
		http.Error(w, "Missing shopId or item", http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.AddItem(r.Context(), user, payload.ShopID, payload.ShopName, payload.Item)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, service.ErrMenuItemMissing):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrItemSoldOut):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	h.writeCart(w, cart)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		http.Error(w, "Missing X-User-ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.UpdateQuantity(r.Context(), user, mux.Vars(r)["itemId"], payload.Quantity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCart(w, cart)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		http.Error(w, "Missing X-User-ID", http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.RemoveItem(r.Context(), user, mux.Vars(r)["itemId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCart(w, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		http.Error(w, "Missing X-User-ID", http.StatusBadRequest)
		return
	}

	if err := h.Carts.Clear(r.Context(), user); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
