package main

import (
	"context"
	"os"

	"pickup-market/config"
	httpapi "pickup-market/sync-svc/internal/api/http"
	"pickup-market/sync-svc/internal/service"
	"pickup-market/sync-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	orderSvcURL := os.Getenv("ORDER_SVC_URL")
	if orderSvcURL == "" {
		orderSvcURL = "http://localhost:8082"
	}

	store := storage.NewLiveStore()
	client := storage.NewOrderClient(orderSvcURL)
	hub := service.NewHub()

	reader := config.NewKafkaReader(config.OrderEventsTopic, "sync-svc")
	defer reader.Close()

	consumer := service.NewConsumer(reader, store, client, hub)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(service.NewLiveService(store, client), hub)
	httpapi.StartServer(":8084", httpapi.NewRouter(handler))
}
