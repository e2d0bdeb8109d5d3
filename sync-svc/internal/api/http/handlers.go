package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"pickup-market/sync-svc/internal/domain"
	"pickup-market/sync-svc/internal/service"
)

type Handler struct {
	Live service.LiveServiceInterface
	Hub  service.HubInterface
}

func NewHandler(live service.LiveServiceInterface, hub service.HubInterface) *Handler {
	return &Handler{Live: live, Hub: hub}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/live/shops/{shopId}/orders", h.shopQueue).Methods("GET")
	r.HandleFunc("/api/live/shops/{shopId}/stream", h.streamShop).Methods("GET")
	r.HandleFunc("/api/live/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/live/orders/{id}/stream", h.streamOrder).Methods("GET")
	r.HandleFunc("/api/live/orders/{id}/status", h.updateStatus).Methods("PATCH")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) shopQueue(w http.ResponseWriter, r *http.Request) {
	views := h.Live.ShopQueue(mux.Vars(r)["shopId"], r.URL.Query().Get("scope"))
	if views == nil {
		views = []domain.OrderView{}
	}
	respondJSON(w, http.StatusOK, views)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	view, err := h.Live.Order(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("X-User-ID")
	if actorID == "" {
		respondError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}
	var body struct {
		Status       string `json:"status"`
		RejectReason string `json:"rejectReason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.Live.UpdateStatus(r.Context(), mux.Vars(r)["id"], actorID, body.Status, body.RejectReason)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotTracked) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) streamShop(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, h.Hub.SubscribeShop(mux.Vars(r)["shopId"]))
}

func (h *Handler) streamOrder(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, h.Hub.SubscribeOrder(mux.Vars(r)["id"]))
}

// stream writes events as server-sent events until the client goes away.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request, sub *service.Subscription) {
	defer sub.Unsubscribe()

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-sub.Events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, payload)
			flusher.Flush()
		}
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
