package main

import (
	"context"
	"log"

	httpapi "eatery-pos/internal/api/http"
	"eatery-pos/internal/config"
	"eatery-pos/internal/service"
	"eatery-pos/internal/storage"
)

func main() {
	ctx := context.Background()

	var store storage.BlobStore
	switch driver := config.StorageDriver(); driver {
	case "redis":
		store = storage.NewRedisStore(config.MustInitRedis())
	case "postgres":
		pg := storage.NewPostgresStore(config.MustInitPostgres())
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		store = pg
	case "memory":
		log.Println("[pos] memory storage selected, state will not survive a restart")
		store = storage.NewMemoryStore()
	default:
		log.Fatalf("Unknown STORAGE_DRIVER %q", driver)
	}

	repo := storage.NewRepository(store)

	var publisher service.OrderPublisher
	if config.KafkaBroker() != "" {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter(config.KafkaTopic()))
		log.Printf("[pos] publishing order events to %s", config.KafkaTopic())
	}

	menu, err := service.NewMenuService(ctx, repo)
	if err != nil {
		log.Fatal("Failed to load menu:", err)
	}
	cart, err := service.NewCartService(ctx, repo, menu)
	if err != nil {
		log.Fatal("Failed to load cart:", err)
	}
	menu.SetCartCascader(cart)

	orders, err := service.NewOrderService(ctx, repo, publisher)
	if err != nil {
		log.Fatal("Failed to load orders:", err)
	}
	reports := service.NewReportService(orders)

	qr, err := service.NewQRService(ctx, repo)
	if err != nil {
		log.Fatal("Failed to load QR image:", err)
	}

	handler := httpapi.NewHandler(menu, cart, orders, reports, qr)
	httpapi.StartServer(config.Addr(), httpapi.NewRouter(handler))
}
