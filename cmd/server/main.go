package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/homevista/property-listings/internal/bootstrap"
	"github.com/homevista/property-listings/internal/config"
	"github.com/homevista/property-listings/internal/database"
	"github.com/homevista/property-listings/internal/handler"
	"github.com/homevista/property-listings/internal/repository"
	"github.com/homevista/property-listings/internal/router"
	queue_publisher "github.com/homevista/property-listings/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
	cfg := config.Load()

	db, err := database.Open(cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("connect to store: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := bootstrap.Run(ctx, db, cfg); err != nil {
		cancel()
		log.Fatalf("bootstrap: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache and rate limiting disabled")
	}

	seq := repository.NewSequenceRepo(db)
	users := repository.NewUserRepo(db, seq)
	properties := repository.NewPropertyRepo(db, seq)
	wishlists := repository.NewWishlistRepo(db, seq, properties)
	inquiries := repository.NewInquiryRepo(db, seq)

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, users),
		Properties: handler.NewPropertyHandler(properties),
		Wishlists:  handler.NewWishlistHandler(wishlists, properties),
		Inquiries:  handler.NewInquiryHandler(inquiries, queue_publisher.NewPublisher(cfg.AMQPURL)),
		Users:      handler.NewUserHandler(users),
		Dashboard:  handler.NewDashboardHandler(properties, users, inquiries),
	}

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	router.RegisterRoutes(e, cfg, h, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
