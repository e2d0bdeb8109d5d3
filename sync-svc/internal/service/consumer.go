package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"pickup-market/sync-svc/internal/domain"
)

type Consumer struct {
	Reader  *kafka.Reader
	Store   StoreInterface
	Fetcher OrderFetcher
	Hub     HubInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface, fetcher OrderFetcher, hub HubInterface) *Consumer {
	return &Consumer{
		Reader:  reader,
		Store:   store,
		Fetcher: fetcher,
		Hub:     hub,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Sync Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

// Process applies one order event to the live store and notifies
// subscribers. Insert events refetch the full order from order-svc so
// the view carries joined items; update events merge in place.
func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) {
	switch event.Type {
	case domain.EventOrderCreated:
		view, err := c.Fetcher.FetchOrder(ctx, event.OrderID)
		if err != nil {
			log.Printf("Error fetching order %s: %v", event.OrderID, err)
			return
		}
		c.Store.ApplyInsert(view)
	case domain.EventOrderUpdated:
		if !c.Store.MergeUpdate(event) {
			// Missed the insert; recover with a full fetch.
			view, err := c.Fetcher.FetchOrder(ctx, event.OrderID)
			if err != nil {
				log.Printf("Error fetching order %s: %v", event.OrderID, err)
				return
			}
			c.Store.ApplyInsert(view)
		}
	default:
		log.Printf("Skipping unknown event type %q", event.Type)
		return
	}

	c.Hub.Publish(event)
}
