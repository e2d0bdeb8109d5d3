package main

import (
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"pickup-market/api-gateway/internal/gateway"
	"pickup-market/config"
)

func main() {
	config.LoadEnv()

	cfg := gateway.Config{
		ShopSvcURL:  getEnv("SHOP_SVC_URL", "http://localhost:8081"),
		OrderSvcURL: getEnv("ORDER_SVC_URL", "http://localhost:8082"),
		CartSvcURL:  getEnv("CART_SVC_URL", "http://localhost:8083"),
		SyncSvcURL:  getEnv("SYNC_SVC_URL", "http://localhost:8084"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	log.Println("API Gateway starting on port 8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
