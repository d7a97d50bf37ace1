// Package handler exposes the HTTP handlers for the room-booking API.
// Handlers depend on narrow store interfaces rather than the concrete
// Mongo repositories so the booking workflow can be exercised in tests
// with in-memory fakes.
package handler

import (
	"context"

	"github.com/iliyamo/room-booking/internal/model"
)

// UserStore is the slice of the user repository the handlers need.
// *repository.UserRepo satisfies it.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, u model.User) error
	AppendBooking(ctx context.Context, email string, b model.Booking) error
	RemoveBooking(ctx context.Context, email, bookingID string) error
}

// RoomStore is the slice of the room repository the handlers need.
// *repository.RoomRepo satisfies it.
type RoomStore interface {
	List(ctx context.Context, min, max float64) ([]model.Room, error)
	Featured(ctx context.Context, n int) ([]model.Room, error)
	GetByID(ctx context.Context, id string) (model.Room, error)
	IsDateBooked(ctx context.Context, id, date string) (bool, error)
	AddBookedDate(ctx context.Context, id, date string) error
	RemoveBookedDate(ctx context.Context, id, date string) error
}

// EventPublisher receives booking lifecycle events after a mutation has
// been persisted. Publishing is best-effort: failures are logged by the
// implementation and never surface to the API caller.
type EventPublisher interface {
	BookingCreated(ctx context.Context, b model.Booking, email string)
	BookingCancelled(ctx context.Context, b model.Booking, email string)
}
