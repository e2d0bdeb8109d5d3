package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pickup-market/sync-svc/internal/domain"
)

var ErrOrderNotTracked = errors.New("order not tracked")

// LiveService serves queue and detail reads from the store and handles
// owner status changes optimistically: the local view flips first, the
// authoritative write follows, and a failed write rolls the view back.
type LiveService struct {
	store     StoreInterface
	forwarder StatusForwarder
}

func NewLiveService(store StoreInterface, forwarder StatusForwarder) *LiveService {
	return &LiveService{store: store, forwarder: forwarder}
}

func (s *LiveService) ShopQueue(shopID, scope string) []domain.OrderView {
	views := s.store.ListShopOrders(shopID)
	if scope == "" {
		return views
	}
	wantActive := scope == "active"
	filtered := make([]domain.OrderView, 0, len(views))
	for _, view := range views {
		if domain.IsActive(view.Status) == wantActive {
			filtered = append(filtered, view)
		}
	}
	return filtered
}

func (s *LiveService) Order(orderID string) (*domain.OrderView, error) {
	view, ok := s.store.GetOrder(orderID)
	if !ok {
		return nil, ErrOrderNotTracked
	}
	return view, nil
}

func (s *LiveService) UpdateStatus(ctx context.Context, orderID, actorID, status, rejectReason string) (*domain.OrderView, error) {
	op, err := s.store.ApplyOptimistic(orderID, status)
	if err != nil {
		return nil, ErrOrderNotTracked
	}

	if err := s.forwarder.UpdateStatus(ctx, orderID, actorID, status, rejectReason); err != nil {
		if revertErr := s.store.Revert(op.ID); revertErr != nil {
			log.Printf("[sync-svc] revert after failed update: %v", revertErr)
		}
		return nil, fmt.Errorf("forward status update: %w", err)
	}

	if err := s.store.Confirm(op.ID); err != nil {
		log.Printf("[sync-svc] confirm pending op: %v", err)
	}
	view, _ := s.store.GetOrder(orderID)
	return view, nil
}

var _ LiveServiceInterface = (*LiveService)(nil)
