package model

import "go.mongodb.org/mongo-driver/v2/bson"

// RoomSnapshot captures the title, nightly price and size of a room at
// the moment a booking is made. It is embedded in the booking record so
// that later edits to the room do not rewrite booking history.
//
// Fields:
//  Title         – room title at booking time.
//  PricePerNight – nightly price at booking time.
//  RoomSize      – human readable size description (e.g. "1500 sq ft").
type RoomSnapshot struct {
	Title         string  `bson:"title" json:"title"`
	PricePerNight float64 `bson:"pricePerNight" json:"pricePerNight"`
	RoomSize      string  `bson:"roomSize" json:"roomSize"`
}

// Booking is a single reservation owned by a user. It lives inside the
// user's embedded bookings array, not in its own collection.
//
// Fields:
//  BookingID   – opaque UUID assigned when the booking is created.
//  RoomID      – hex ObjectID of the booked room.
//  BookingDate – calendar date in "YYYY-MM-DD" form (no time of day).
//  Room        – snapshot of the room at booking time.
type Booking struct {
	BookingID   string       `bson:"bookingId" json:"bookingId"`
	RoomID      string       `bson:"roomId" json:"roomId"`
	BookingDate string       `bson:"bookingDate" json:"bookingDate"`
	Room        RoomSnapshot `bson:"room" json:"room"`
}

// User is a document in the `users` collection. Email is the unique
// lookup key; UID is the identity assigned by the external auth
// provider at sign-up and is stored verbatim.
type User struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UID      string        `bson:"uid" json:"uid"`
	Name     string        `bson:"name" json:"name"`
	Email    string        `bson:"email" json:"email"`
	Bookings []Booking     `bson:"bookings" json:"bookings"`
}
