package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/room-booking/internal/config"
	"github.com/iliyamo/room-booking/internal/handler"
	"github.com/iliyamo/room-booking/internal/metrics"
	"github.com/iliyamo/room-booking/internal/middleware"
)

// Handlers bundles the constructed handlers the router wires up.
type Handlers struct {
	Token   *handler.TokenHandler
	User    *handler.UserHandler
	Room    *handler.RoomHandler
	Booking *handler.BookingHandler
}

// Register mounts every route of the booking API on the Echo instance.
//
// Auth policy: token issuing, registration and all room browsing
// (listing, featured, detail, availability) are public; only the three
// booking operations sit behind the JWT gate. Earlier iterations of the
// API gated some browse routes too; the public split here is the final
// behavior (see DESIGN.md).
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client, reg *prometheus.Registry) {
	if reg != nil {
		col := metrics.NewCollector(reg)
		e.Use(col.Middleware())
		e.GET("/metrics", metrics.Handler(reg))
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Liveness and health probes.
	e.GET("/", handler.Live)
	e.GET("/healthz", handler.Health)

	// Public surface.
	e.POST("/jwt", h.Token.Issue)
	e.POST("/addUser", h.User.Register)
	e.POST("/checkAvailability", h.Room.CheckAvailability)

	// Browse endpoints get the Redis response cache; room data only
	// changes when a booking lands, so short-TTL caching is safe.
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	e.GET("/rooms", h.Room.List, cache)
	e.GET("/featured", h.Room.Featured, cache)
	e.GET("/rooms/:roomId", h.Room.Get, cache)

	// Protected booking operations.
	auth := middleware.JWTAuth(cfg.JWTSecret)
	e.POST("/bookRoom", h.Booking.Book, auth)
	e.GET("/my-bookings", h.Booking.MyBookings, auth)
	e.DELETE("/cancel-booking/:roomId", h.Booking.Cancel, auth)
}
