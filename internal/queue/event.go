// Package queue defines the message payloads exchanged over the broker
// and the background consumer that turns them into an audit log.
package queue

// BookingQueueName is the durable queue carrying booking lifecycle events.
const BookingQueueName = "room.bookings"

// Booking event actions.
const (
	ActionCreated   = "created"
	ActionCancelled = "cancelled"
)

// BookingEvent is published after a booking is created or cancelled. It
// carries enough context for downstream consumers (audit log, email
// notifications, analytics) to act without querying the database.
type BookingEvent struct {
	Action        string  `json:"action"` // "created" or "cancelled"
	BookingID     string  `json:"bookingId"`
	UserEmail     string  `json:"userEmail"`
	RoomID        string  `json:"roomId"`
	RoomTitle     string  `json:"roomTitle"`
	BookingDate   string  `json:"bookingDate"`
	PricePerNight float64 `json:"pricePerNight"`
	OccurredAt    string  `json:"occurredAt"` // RFC3339 UTC
}
