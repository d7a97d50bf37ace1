package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/middleware"
	"github.com/iliyamo/room-booking/internal/model"
	"github.com/iliyamo/room-booking/internal/repository"
	"github.com/iliyamo/room-booking/internal/utils"
)

// cancelCutoff is the minimum lead time for cancelling a booking. A
// booking whose date is closer than this, or already in the past, stays
// on the books.
const cancelCutoff = 24 * time.Hour

// BookingHandler orchestrates the booking workflow across the user and
// room stores. All methods assume JWTAuth has already run and attached
// the caller's email to the context.
//
// The two-store mutations are not transactional; instead the room-side
// conditional append is the commit point, and a failed user-side write
// is compensated by undoing the room write (and vice versa on
// cancellation). See DESIGN.md for the reasoning.
type BookingHandler struct {
	Users  UserStore
	Rooms  RoomStore
	Events EventPublisher // optional; nil disables event publishing
}

func NewBookingHandler(users UserStore, rooms RoomStore, events EventPublisher) *BookingHandler {
	return &BookingHandler{Users: users, Rooms: rooms, Events: events}
}

// callerEmail pulls the authenticated email out of the context.
func callerEmail(c echo.Context) (string, bool) {
	v, ok := c.Get(middleware.CtxEmail).(string)
	return v, ok && v != ""
}

type bookReq struct {
	RoomID      string `json:"roomId"`
	BookingDate string `json:"bookingDate"`
}

// Book handles POST /bookRoom.
//
// The availability check and the date append are a single conditional
// update on the room document, so two concurrent requests for the same
// room and date cannot both succeed. The user-side booking record is
// written second; if that write fails the date is pulled back off the
// room before reporting the error.
func (h *BookingHandler) Book(c echo.Context) error {
	email, ok := callerEmail(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}
	var req bookReq
	if err := c.Bind(&req); err != nil || req.RoomID == "" || req.BookingDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "roomId and bookingDate are required"})
	}
	date, err := utils.NormalizeDate(req.BookingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid booking date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		slog.Error("book: user lookup failed", "email", email, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	room, err := h.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
		}
		slog.Error("book: room lookup failed", "room", req.RoomID, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	// Commit point: append the date only if it is not already booked.
	switch err := h.Rooms.AddBookedDate(ctx, req.RoomID, date); {
	case errors.Is(err, repository.ErrDateUnavailable):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "not available"})
	case errors.Is(err, repository.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
	case err != nil:
		slog.Error("book: date append failed", "room", req.RoomID, "date", date, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	booking := model.Booking{
		BookingID:   uuid.NewString(),
		RoomID:      req.RoomID,
		BookingDate: date,
		Room:        room.Snapshot(),
	}
	if err := h.Users.AppendBooking(ctx, email, booking); err != nil {
		// Undo the room write so the date does not stay blocked by a
		// booking that was never recorded.
		if undoErr := h.Rooms.RemoveBookedDate(ctx, req.RoomID, date); undoErr != nil {
			slog.Error("book: compensation failed, room date orphaned",
				"room", req.RoomID, "date", date, "err", undoErr)
		}
		slog.Error("book: booking append failed", "email", email, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	if h.Events != nil {
		h.Events.BookingCreated(ctx, booking, email)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "booking confirmed",
		"booking": booking,
	})
}

// MyBookings handles GET /my-bookings. A missing user is "no bookings",
// never 404: the frontend calls this right after sign-in, possibly
// before registration has landed.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	email, ok := callerEmail(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusOK, []model.Booking{})
		}
		slog.Error("my-bookings: lookup failed", "email", email, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	if u.Bookings == nil {
		u.Bookings = []model.Booking{}
	}
	return c.JSON(http.StatusOK, u.Bookings)
}

// Cancel handles DELETE /cancel-booking/:roomId. The path parameter is
// the room id; the first booking of the caller referencing that room is
// the one cancelled.
//
// Cutoff policy: a booking whose date has arrived or passed cannot be
// cancelled, and neither can one starting in under 24 hours. Both cases
// are separate guarded branches rather than one signed subtraction.
func (h *BookingHandler) Cancel(c echo.Context) error {
	email, ok := callerEmail(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}
	roomID := c.Param("roomId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		slog.Error("cancel: user lookup failed", "email", email, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	var booking *model.Booking
	for i := range u.Bookings {
		if u.Bookings[i].RoomID == roomID {
			booking = &u.Bookings[i]
			break
		}
	}
	if booking == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
	}

	day, err := utils.ParseBookedDate(booking.BookingDate)
	if err != nil {
		slog.Error("cancel: stored date unparseable", "booking", booking.BookingID, "date", booking.BookingDate)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	now := time.Now().UTC()
	if !day.After(now) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "booking date has already passed"})
	}
	if day.Sub(now) < cancelCutoff {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "cancellation window closed: less than 24 hours before booking"})
	}

	if err := h.Users.RemoveBooking(ctx, email, booking.BookingID); err != nil {
		slog.Error("cancel: booking removal failed", "email", email, "booking", booking.BookingID, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	switch err := h.Rooms.RemoveBookedDate(ctx, booking.RoomID, booking.BookingDate); {
	case errors.Is(err, repository.ErrRoomNotFound):
		// Room was deleted out-of-band; nothing left to release.
	case err != nil:
		// Put the booking back so the user record stays consistent with
		// the still-blocked room date.
		if undoErr := h.Users.AppendBooking(ctx, email, *booking); undoErr != nil {
			slog.Error("cancel: compensation failed, user booking lost",
				"email", email, "booking", booking.BookingID, "err", undoErr)
		}
		slog.Error("cancel: date removal failed", "room", booking.RoomID, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	if h.Events != nil {
		h.Events.BookingCancelled(ctx, *booking, email)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "booking cancelled",
		"booking": booking,
	})
}
