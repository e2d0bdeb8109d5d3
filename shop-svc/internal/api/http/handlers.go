package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"pickup-market/shop-svc/internal/domain"
	"pickup-market/shop-svc/internal/service"
)

type Handler struct {
	Shops service.ShopServiceInterface
	Menus service.MenuServiceInterface
}

func NewHandler(shops service.ShopServiceInterface, menus service.MenuServiceInterface) *Handler {
	return &Handler{Shops: shops, Menus: menus}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/shops", h.createShop).Methods("POST")
	r.HandleFunc("/api/shops", h.listShops).Methods("GET")
	r.HandleFunc("/api/shops/{id}", h.getShop).Methods("GET")
	r.HandleFunc("/api/shops/{id}", h.updateShop).Methods("PUT")
	r.HandleFunc("/api/shops/{id}", h.deleteShop).Methods("DELETE")
	r.HandleFunc("/api/shops/{id}/open", h.setShopOpen).Methods("PATCH")
	r.HandleFunc("/api/shops/{id}/slots", h.pickupSlots).Methods("GET")

	r.HandleFunc("/api/shops/{id}/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/shops/{id}/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/api/shops/{id}/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/menu-items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu-items/{itemId}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu-items/{itemId}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu-items/{itemId}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/menu-items/{itemId}/sold-out", h.setSoldOut).Methods("PATCH")
	r.HandleFunc("/api/menu-items/{itemId}/options", h.addOption).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) createShop(w http.ResponseWriter, r *http.Request) {
	var shop domain.Shop
	if err := json.NewDecoder(r.Body).Decode(&shop); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Shops.Create(r.Context(), &shop); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, shop)
}

func (h *Handler) listShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.Shops.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if shops == nil {
		shops = []domain.Shop{}
	}
	respondJSON(w, http.StatusOK, shops)
}

func (h *Handler) getShop(w http.ResponseWriter, r *http.Request) {
	shop, err := h.Shops.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, shop)
}

func (h *Handler) updateShop(w http.ResponseWriter, r *http.Request) {
	var shop domain.Shop
	if err := json.NewDecoder(r.Body).Decode(&shop); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	shop.ID = mux.Vars(r)["id"]
	if err := h.Shops.Update(r.Context(), &shop); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, shop)
}

func (h *Handler) deleteShop(w http.ResponseWriter, r *http.Request) {
	if err := h.Shops.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setShopOpen(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IsOpen bool `json:"isOpen"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Shops.SetOpen(r.Context(), mux.Vars(r)["id"], body.IsOpen); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"isOpen": body.IsOpen})
}

func (h *Handler) pickupSlots(w http.ResponseWriter, r *http.Request) {
	var disabled []string
	if raw := r.URL.Query().Get("disabled"); raw != "" {
		disabled = strings.Split(raw, ",")
	}
	slots, err := h.Shops.PickupSlots(r.Context(), mux.Vars(r)["id"], time.Now(), disabled)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, slots)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var cat domain.MenuCategory
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cat.ShopID = mux.Vars(r)["id"]
	if err := h.Menus.CreateCategory(r.Context(), &cat); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, cat)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Menus.ListCategories(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if cats == nil {
		cats = []domain.MenuCategory{}
	}
	respondJSON(w, http.StatusOK, cats)
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menus.ListItems(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Menus.CreateItem(r.Context(), &item); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menus.GetItem(r.Context(), mux.Vars(r)["itemId"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item.ID = mux.Vars(r)["itemId"]
	if err := h.Menus.UpdateItem(r.Context(), &item); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Menus.DeleteItem(r.Context(), mux.Vars(r)["itemId"]); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSoldOut(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IsSoldOut bool `json:"isSoldOut"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Menus.SetSoldOut(r.Context(), mux.Vars(r)["itemId"], body.IsSoldOut); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"isSoldOut": body.IsSoldOut})
}

func (h *Handler) addOption(w http.ResponseWriter, r *http.Request) {
	var opt domain.MenuOption
	if err := json.NewDecoder(r.Body).Decode(&opt); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	opt.ItemID = mux.Vars(r)["itemId"]
	if err := h.Menus.AddOption(r.Context(), &opt); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, opt)
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrShopNotFound), errors.Is(err, service.ErrMenuItemNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidShop), errors.Is(err, service.ErrInvalidMenuItem):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
