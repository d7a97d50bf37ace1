package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/iliyamo/room-booking/internal/model"
)

// RoomRepo manages documents in the `rooms` collection. Only the
// bookedDates array is ever written by this service; room creation and
// editing belong to an external admin tool.
type RoomRepo struct {
	col *mongo.Collection
}

// NewRoomRepo returns a RoomRepo over the `rooms` collection of the
// given database.
func NewRoomRepo(db *mongo.Database) *RoomRepo {
	return &RoomRepo{col: db.Collection("rooms")}
}

// roomID parses a caller-supplied hex id. An unparseable id can never
// match a document, so it collapses into ErrRoomNotFound.
func roomID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, ErrRoomNotFound
	}
	return oid, nil
}

// List returns rooms whose pricePerNight lies in [min, max] inclusive,
// in the store's natural order.
func (r *RoomRepo) List(ctx context.Context, min, max float64) ([]model.Room, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"pricePerNight": bson.M{"$gte": min, "$lte": max},
	})
	if err != nil {
		return nil, err
	}
	rooms := []model.Room{}
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Featured returns the first n rooms in store order. There is no
// curation criterion; "featured" is whatever the store yields first.
func (r *RoomRepo) Featured(ctx context.Context, n int) ([]model.Room, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(int64(n)))
	if err != nil {
		return nil, err
	}
	rooms := []model.Room{}
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetByID fetches a room by its hex ObjectID. Returns ErrRoomNotFound
// for malformed ids and missing documents alike.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (model.Room, error) {
	oid, err := roomID(id)
	if err != nil {
		return model.Room{}, err
	}
	var room model.Room
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Room{}, ErrRoomNotFound
	}
	return room, err
}

// IsDateBooked reports whether the given canonical date is present in
// the room's bookedDates array. A missing room counts as not booked;
// the availability endpoint answers "available" for unknown rooms.
func (r *RoomRepo) IsDateBooked(ctx context.Context, id, date string) (bool, error) {
	oid, err := roomID(id)
	if err != nil {
		return false, nil
	}
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid, "bookedDates": date})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddBookedDate appends the date to the room's bookedDates only if it is
// not already there. The filter makes the check-then-append a single
// atomic document update, so two concurrent bookings for the same room
// and date cannot both succeed.
func (r *RoomRepo) AddBookedDate(ctx context.Context, id, date string) error {
	oid, err := roomID(id)
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "bookedDates": bson.M{"$ne": date}},
		bson.M{"$push": bson.M{"bookedDates": date}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// No match means either the room is gone or the date is taken.
		n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrRoomNotFound
		}
		return ErrDateUnavailable
	}
	return nil
}

// RemoveBookedDate pulls the date from the room's bookedDates array.
// Pulling a date that is not present is not an error.
func (r *RoomRepo) RemoveBookedDate(ctx context.Context, id, date string) error {
	oid, err := roomID(id)
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"bookedDates": date}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRoomNotFound
	}
	return nil
}
