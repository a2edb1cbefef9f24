package main

import (
	"log"

	"KitStoreAPI/internal/config"
	"KitStoreAPI/internal/db"
	"KitStoreAPI/internal/events"
	"KitStoreAPI/internal/pricing"
	"KitStoreAPI/internal/repository"
	"KitStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"
)

func main() {
	cfg := config.Load()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	publisher := events.NewPublisher(config.NewKafkaWriter("checkout-completed"))
	defer publisher.Close()

	formatter := pricing.NewFormatter(cfg.ExchangeRate, language.Vietnamese)

	// ======================
	// REPOSITORIES
	// ======================
	accountCartRepo := repository.NewAccountCartRepository(pool)
	guestCartRepo := repository.NewGuestCartRepository(rdb)
	orderRepo := repository.NewOrderRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)

	// ======================
	// SERVICES
	// ======================
	cartSvc := services.NewCartService(accountCartRepo, guestCartRepo, cfg.ExchangeRate)
	orderSvc := services.NewOrderService(orderRepo, publisher, formatter)
	catalogSvc := services.NewCatalogService(catalogRepo, cfg.MissPolicy)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/store")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerCartRoutes(api, cartSvc)
	registerOrderRoutes(api, orderSvc)
	registerCatalogRoutes(api, catalogSvc)

	log.Fatal(e.Start(cfg.ListenAddr))
}
