package main // Entry point package

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iliyamo/room-booking/internal/config"
	"github.com/iliyamo/room-booking/internal/database"
	"github.com/iliyamo/room-booking/internal/handler"
	"github.com/iliyamo/room-booking/internal/queue"
	"github.com/iliyamo/room-booking/internal/repository"
	"github.com/iliyamo/room-booking/internal/router"
	queue_publisher "github.com/iliyamo/room-booking/internal/service"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}

	users := repository.NewUserRepo(db)
	rooms := repository.NewRoomRepo(db)

	h := router.Handlers{
		Token:   handler.NewTokenHandler(cfg.JWTSecret),
		User:    handler.NewUserHandler(users),
		Room:    handler.NewRoomHandler(rooms),
		Booking: handler.NewBookingHandler(users, rooms, queue_publisher.New()),
	}

	// Cache and rate limiting degrade to pass-through when Redis is down.
	rdb := config.NewRedisClient()
	if rdb == nil {
		slog.Warn("redis unavailable; response cache and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg, rdb, prometheus.NewRegistry())

	// Booking audit consumer; reconnects forever in the background.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			slog.Error("booking consumer stopped", "err", err)
		}
	}()

	addr := ":" + cfg.Port
	slog.Info("rooms server listening", "addr", addr, "env", cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
