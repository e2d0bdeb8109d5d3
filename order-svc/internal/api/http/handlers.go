package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"pickup-market/order-svc/internal/domain"
	"pickup-market/order-svc/internal/service"
)

type Handler struct {
	Orders   service.OrderServiceInterface
	Payments service.PaymentServiceInterface
}

func NewHandler(orders service.OrderServiceInterface, payments service.PaymentServiceInterface) *Handler {
	return &Handler{Orders: orders, Payments: payments}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/checkout", h.checkout).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getQRCode).Methods("GET")
	r.HandleFunc("/api/shops/{shopId}/orders", h.listShopOrders).Methods("GET")
	r.HandleFunc("/api/customers/{customerId}/orders", h.listCustomerOrders).Methods("GET")
	r.HandleFunc("/payment/success", h.paymentSuccess).Methods("GET")
	r.HandleFunc("/payment/fail", h.paymentFail).Methods("GET")
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var params service.CreateOrderParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if params.CustomerID == "" {
		params.CustomerID = r.Header.Get("X-User-ID")
	}

	order, err := h.Orders.Create(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder),
			errors.Is(err, service.ErrInvalidOrderLine),
			errors.Is(err, service.ErrInvalidPickupTime),
			errors.Is(err, service.ErrTotalMismatch):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrShopClosed):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status       string `json:"status"`
		RejectReason string `json:"reject_reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	next, err := domain.ParseStatus(payload.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actorID := r.Header.Get("X-User-ID")
	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], actorID, next, payload.RejectReason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrNotShopOwner):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrStatusConflict):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	redirect, err := h.Payments.CheckoutURL(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, service.ErrPaymentKeyMissing) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"redirect_url": redirect})
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.GetQRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "Pickup QR not available yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(qr)
}

func (h *Handler) listShopOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListShopOrders(r.Context(), mux.Vars(r)["shopId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if scope := r.URL.Query().Get("scope"); scope == "active" || scope == "done" {
		filtered := make([]domain.Order, 0, len(orders))
		for _, order := range orders {
			if domain.IsActive(order.Status) == (scope == "active") {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) listCustomerOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListCustomerOrders(r.Context(), mux.Vars(r)["customerId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// paymentSuccess is the hosted checkout's success return leg. The order is
// confirmed paid only when all three query parameters are present and the
// amount matches.
func (h *Handler) paymentSuccess(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	order, err := h.Payments.ConfirmSuccess(
		r.Context(),
		query.Get("paymentKey"),
		query.Get("orderId"),
		query.Get("amount"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentParams):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrPaymentAmountMismatch):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":  "Payment confirmed",
		"order_id": order.ID,
		"status":   order.Status,
	})
}

// paymentFail leaves the order pending and re-enterable; the failure is only
// reported back to the customer.
func (h *Handler) paymentFail(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	message := query.Get("message")
	if message == "" {
		message = "Payment failed"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusPaymentRequired)
	json.NewEncoder(w).Encode(map[string]string{
		"message": message,
		"code":    query.Get("code"),
	})
}
