package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/iliyamo/room-booking/internal/model"
)

// UserRepo manages documents in the `users` collection. Bookings live
// embedded in the user document; mutations use $push/$pull so concurrent
// updates to different bookings of the same user cannot clobber each
// other.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepo returns a UserRepo over the `users` collection of the
// given database.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

// GetByEmail fetches a user by normalized email. Returns ErrUserNotFound
// when no document matches.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// Create inserts a new user document. Email is normalized and the
// bookings array is always initialized so it decodes as empty, never nil
// on the wire.
func (r *UserRepo) Create(ctx context.Context, u model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Bookings == nil {
		u.Bookings = []model.Booking{}
	}
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// AppendBooking pushes a booking record onto the user's embedded
// bookings array. Returns ErrUserNotFound if the user vanished between
// lookup and update.
func (r *UserRepo) AppendBooking(ctx context.Context, email string, b model.Booking) error {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$push": bson.M{"bookings": b}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// RemoveBooking pulls the booking with the given bookingId off the
// user's bookings array. Removing an already-removed booking is not an
// error; cancellation compensation relies on that.
func (r *UserRepo) RemoveBooking(ctx context.Context, email, bookingID string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$pull": bson.M{"bookings": bson.M{"bookingId": bookingID}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
