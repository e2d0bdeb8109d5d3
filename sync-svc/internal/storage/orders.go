package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pickup-market/sync-svc/internal/domain"
)

// OrderClient talks to order-svc over HTTP to refetch full order views
// and to forward owner status changes to the authoritative store.
type OrderClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *OrderClient) FetchOrder(ctx context.Context, orderID string) (*domain.OrderView, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/orders/"+orderID, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch order %s: status %d", orderID, resp.StatusCode)
	}
	var view domain.OrderView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *OrderClient) UpdateStatus(ctx context.Context, orderID, actorID, status, rejectReason string) error {
	// Keyed to match order-svc's updateStatus contract.
	payload, err := json.Marshal(map[string]string{
		"status":        status,
		"reject_reason": rejectReason,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		c.BaseURL+"/api/orders/"+orderID+"/status", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", actorID)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("update order %s status: status %d", orderID, resp.StatusCode)
	}
	return nil
}
