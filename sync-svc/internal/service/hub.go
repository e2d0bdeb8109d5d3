package service

import (
	"log"
	"sync"

	"pickup-market/sync-svc/internal/domain"
)

const subscriptionBuffer = 16

// Subscription delivers matching events in publish order. Events is
// closed when Unsubscribe runs; callers must stop reading after that.
type Subscription struct {
	Events <-chan domain.OrderEvent

	topic  string
	id     int
	cancel func()
	once   sync.Once
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// Hub fans events out to shop and order subscribers. Delivery is FIFO
// per subscription; a slow subscriber drops events rather than blocking
// the consumer loop.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan domain.OrderEvent
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]chan domain.OrderEvent)}
}

func (h *Hub) SubscribeShop(shopID string) *Subscription {
	return h.subscribe("shop:" + shopID)
}

func (h *Hub) SubscribeOrder(orderID string) *Subscription {
	return h.subscribe("order:" + orderID)
}

func (h *Hub) subscribe(topic string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan domain.OrderEvent, subscriptionBuffer)
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[int]chan domain.OrderEvent)
	}
	h.subs[topic][id] = ch

	return &Subscription{
		Events: ch,
		topic:  topic,
		id:     id,
		cancel: func() { h.unsubscribe(topic, id) },
	}
}

func (h *Hub) unsubscribe(topic string, id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[topic][id]; ok {
		delete(h.subs[topic], id)
		if len(h.subs[topic]) == 0 {
			delete(h.subs, topic)
		}
		close(ch)
	}
}

// Publish routes the event to the owning shop's subscribers and to any
// subscriber watching this specific order.
func (h *Hub) Publish(event domain.OrderEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deliver("shop:"+event.ShopID, event)
	h.deliver("order:"+event.OrderID, event)
}

func (h *Hub) deliver(topic string, event domain.OrderEvent) {
	for id, ch := range h.subs[topic] {
		select {
		case ch <- event:
		default:
			log.Printf("[sync-svc] dropping event for slow subscriber %d on %s", id, topic)
		}
	}
}

var _ HubInterface = (*Hub)(nil)
