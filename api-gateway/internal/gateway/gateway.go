package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	ShopSvcURL  string
	OrderSvcURL string
	CartSvcURL  string
	SyncSvcURL  string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequest(r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	// Live queues and streams before the generic order routes.
	if strings.HasPrefix(path, "/api/live/") {
		g.ProxyRequest(w, r, g.config.SyncSvcURL)
		return
	}

	if path == "/api/cart" || strings.HasPrefix(path, "/api/cart/") {
		g.ProxyRequest(w, r, g.config.CartSvcURL)
		return
	}

	// Owner order queue lives in order-svc, shop catalog in shop-svc.
	if strings.HasPrefix(path, "/api/shops/") && strings.HasSuffix(path, "/orders") {
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
		return
	}

	if path == "/api/shops" || strings.HasPrefix(path, "/api/shops/") ||
		strings.HasPrefix(path, "/api/menu-items") {
		g.ProxyRequest(w, r, g.config.ShopSvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/orders") ||
		strings.HasPrefix(path, "/api/customers/") ||
		strings.HasPrefix(path, "/payment/") {
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
		return
	}

	log.Printf("[GATEWAY] Unmatched API route: %s", path)
	http.Error(w, "API route not found", http.StatusNotFound)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/payment/").HandlerFunc(g.RouteHandler)
	return r
}
