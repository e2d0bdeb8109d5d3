package main

import (
	"pickup-market/config"
	httpapi "pickup-market/cart-svc/internal/api/http"
	"pickup-market/cart-svc/internal/service"
	"pickup-market/cart-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	carts := service.NewCartService(
		storage.NewRedisCartStore(rdb),
		storage.NewPostgresMenuRepository(db),
	)

	handler := httpapi.NewHandler(carts)
	httpapi.StartServer(":8083", httpapi.NewRouter(handler))
}
