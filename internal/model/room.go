package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Room is a document in the `rooms` collection. Rooms are created by an
// external admin tool and never deleted by this service; only the
// BookedDates array is mutated here.
//
// BookedDates is stored as an array but treated as a set of calendar
// dates ("YYYY-MM-DD"): a date appears at most once, and it appears iff
// some user's booking references this room for that date.
type Room struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title         string        `bson:"title" json:"title"`
	PricePerNight float64       `bson:"pricePerNight" json:"pricePerNight"`
	RoomSize      string        `bson:"roomSize" json:"roomSize"`
	BookedDates   []string      `bson:"bookedDates" json:"bookedDates"`
}

// Snapshot returns the fields of the room frozen into a booking record.
func (r Room) Snapshot() RoomSnapshot {
	return RoomSnapshot{
		Title:         r.Title,
		PricePerNight: r.PricePerNight,
		RoomSize:      r.RoomSize,
	}
}
