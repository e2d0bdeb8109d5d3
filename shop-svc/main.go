package main

import (
	"log"

	"pickup-market/config"
	httpapi "pickup-market/shop-svc/internal/api/http"
	"pickup-market/shop-svc/internal/service"
	"pickup-market/shop-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	handler := httpapi.NewHandler(
		service.NewShopService(repo),
		service.NewMenuService(repo),
	)
	httpapi.StartServer(":8081", httpapi.NewRouter(handler))
}
