package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/repository"
	"github.com/iliyamo/room-booking/internal/utils"
)

// Price filter defaults applied when the query parameters are absent or
// not numeric.
const (
	defaultMinPrice = 0
	defaultMaxPrice = 1000
)

// featuredCount is how many rooms the landing page shows. Selection is
// simply the first rooms in store order; there is no curation field.
const featuredCount = 3

// RoomHandler serves the public room browsing and availability endpoints.
type RoomHandler struct {
	Rooms RoomStore
}

func NewRoomHandler(rooms RoomStore) *RoomHandler { return &RoomHandler{Rooms: rooms} }

// List handles GET /rooms?minPrice=&maxPrice=. Prices filter inclusively
// on both ends; bad or missing bounds fall back to the defaults.
func (h *RoomHandler) List(c echo.Context) error {
	minPrice := priceParam(c.QueryParam("minPrice"), defaultMinPrice)
	maxPrice := priceParam(c.QueryParam("maxPrice"), defaultMaxPrice)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Rooms.List(ctx, minPrice, maxPrice)
	if err != nil {
		slog.Error("list rooms failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// Featured handles GET /featured and returns the first three rooms in
// store order.
func (h *RoomHandler) Featured(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Rooms.Featured(ctx, featuredCount)
	if err != nil {
		slog.Error("featured rooms failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get handles GET /rooms/:roomId.
func (h *RoomHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, err := h.Rooms.GetByID(ctx, c.Param("roomId"))
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
		}
		slog.Error("get room failed", "room", c.Param("roomId"), "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, room)
}

type availabilityReq struct {
	RoomID      string `json:"roomId"`
	BookingDate string `json:"bookingDate"`
}

// CheckAvailability handles POST /checkAvailability. The supplied date
// is normalized through the same path the booking operation uses, so the
// two endpoints always agree on what date they are talking about.
func (h *RoomHandler) CheckAvailability(c echo.Context) error {
	var req availabilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	date, err := utils.NormalizeDate(req.BookingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid booking date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	booked, err := h.Rooms.IsDateBooked(ctx, req.RoomID, date)
	if err != nil {
		slog.Error("availability check failed", "room", req.RoomID, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"available": !booked})
}

// priceParam parses a price query parameter, falling back to def when
// the value is absent or not a number.
func priceParam(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
