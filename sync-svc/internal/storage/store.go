package storage

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"pickup-market/sync-svc/internal/domain"
)

var (
	ErrOrderUnknown  = errors.New("order not tracked")
	ErrPendingOpGone = errors.New("pending operation not found")
)

// PendingOp tracks an optimistic status change until the authoritative
// write either confirms or fails.
type PendingOp struct {
	ID         string
	OrderID    string
	PriorState string
	NextState  string
}

// LiveStore holds the in-memory order projections fed by the Kafka
// consumer. All access goes through the mutex.
type LiveStore struct {
	mu      sync.RWMutex
	orders  map[string]*domain.OrderView
	pending map[string]PendingOp
}

func NewLiveStore() *LiveStore {
	return &LiveStore{
		orders:  make(map[string]*domain.OrderView),
		pending: make(map[string]PendingOp),
	}
}

// ApplyInsert stores a freshly fetched order view, replacing any stale
// entry for the same id.
func (s *LiveStore) ApplyInsert(view *domain.OrderView) {
	if view == nil || view.ID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *view
	s.orders[view.ID] = &copied
}

// MergeUpdate folds an update event into the tracked view, touching only
// the fields the event carries. Items and shop info survive the merge.
// Unknown orders are ignored; the next insert event will pick them up.
func (s *LiveStore) MergeUpdate(event domain.OrderEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := s.orders[event.OrderID]
	if !ok {
		return false
	}
	if event.Status != "" {
		view.Status = event.Status
	}
	if event.RejectReason != "" {
		view.RejectReason = event.RejectReason
	}
	if event.PickupTime != "" {
		view.PickupTime = event.PickupTime
	}
	if event.TotalPrice != 0 {
		view.TotalPrice = event.TotalPrice
	}
	if !event.Timestamp.IsZero() {
		view.UpdatedAt = event.Timestamp
	}
	return true
}

func (s *LiveStore) GetOrder(orderID string) (*domain.OrderView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	view, ok := s.orders[orderID]
	if !ok {
		return nil, false
	}
	copied := *view
	return &copied, true
}

// ListShopOrders returns the shop's tracked orders, newest first.
func (s *LiveStore) ListShopOrders(shopID string) []domain.OrderView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var views []domain.OrderView
	for _, view := range s.orders {
		if view.ShopID == shopID {
			views = append(views, *view)
		}
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views
}

// ApplyOptimistic flips the tracked status ahead of the authoritative
// write and records the prior state for a possible revert.
func (s *LiveStore) ApplyOptimistic(orderID, nextStatus string) (PendingOp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := s.orders[orderID]
	if !ok {
		return PendingOp{}, ErrOrderUnknown
	}
	op := PendingOp{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		PriorState: view.Status,
		NextState:  nextStatus,
	}
	view.Status = nextStatus
	s.pending[op.ID] = op
	return op, nil
}

// Confirm drops the pending record; the optimistic state is now truth.
func (s *LiveStore) Confirm(opID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[opID]; !ok {
		return ErrPendingOpGone
	}
	delete(s.pending, opID)
	return nil
}

// Revert restores the status recorded before the optimistic flip.
func (s *LiveStore) Revert(opID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ok := s.pending[opID]
	if !ok {
		return ErrPendingOpGone
	}
	delete(s.pending, opID)
	if view, ok := s.orders[op.OrderID]; ok {
		view.Status = op.PriorState
	}
	return nil
}
