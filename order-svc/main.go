package main

import (
	"log"
	"os"

	"pickup-market/config"
	httpapi "pickup-market/order-svc/internal/api/http"
	"pickup-market/order-svc/internal/service"
	"pickup-market/order-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(config.OrderEventsTopic)
	defer kafkaWriter.Close()

	publicBase := os.Getenv("PUBLIC_BASE_URL")
	if publicBase == "" {
		publicBase = "http://localhost:8080"
	}

	orders := service.NewOrderService(
		repo,
		repo,
		service.NewOrderNumberGenerator(),
		storage.NewKafkaPublisher(kafkaWriter),
		service.PickupQRGenerator{BaseURL: publicBase},
	)
	payments := service.NewPaymentService(
		repo,
		storage.NewRedisCartStore(rdb),
		os.Getenv("PAYMENT_CLIENT_KEY"),
		os.Getenv("PAYMENT_CHECKOUT_URL"),
		publicBase,
	)

	handler := httpapi.NewHandler(orders, payments)
	httpapi.StartServer(":8082", httpapi.NewRouter(handler))
}
