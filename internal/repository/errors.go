// Package repository defines sentinel error values shared across the
// Mongo-backed repositories. Handlers compare against these with
// errors.Is to pick an HTTP status; anything else is a storage failure
// and maps to 500.
package repository

import "errors"

// ErrUserNotFound indicates that no user document matches the given email.
var ErrUserNotFound = errors.New("user not found")

// ErrRoomNotFound indicates that no room document matches the given id,
// or that the id is not a valid ObjectID hex string.
var ErrRoomNotFound = errors.New("room not found")

// ErrDateUnavailable is returned when a booking date is already present
// in a room's bookedDates array. Handlers translate this into an HTTP
// 400 conflict ("not available").
var ErrDateUnavailable = errors.New("date not available")
