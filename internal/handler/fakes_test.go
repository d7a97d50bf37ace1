package handler

// In-memory UserStore/RoomStore fakes mirroring the semantics of the
// Mongo repositories, including the conditional date append.

import (
	"context"
	"slices"

	"github.com/iliyamo/room-booking/internal/model"
	"github.com/iliyamo/room-booking/internal/repository"
)

type fakeUserStore struct {
	users     map[string]*model.User
	appendErr error // forced failure for AppendBooking
	calls     int   // number of store operations performed
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.calls++
	u, ok := s.users[email]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	cp := *u
	cp.Bookings = slices.Clone(u.Bookings)
	return cp, nil
}

func (s *fakeUserStore) Create(_ context.Context, u model.User) error {
	s.calls++
	cp := u
	s.users[u.Email] = &cp
	return nil
}

func (s *fakeUserStore) AppendBooking(_ context.Context, email string, b model.Booking) error {
	s.calls++
	if s.appendErr != nil {
		return s.appendErr
	}
	u, ok := s.users[email]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Bookings = append(u.Bookings, b)
	return nil
}

func (s *fakeUserStore) RemoveBooking(_ context.Context, email, bookingID string) error {
	s.calls++
	u, ok := s.users[email]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Bookings = slices.DeleteFunc(u.Bookings, func(b model.Booking) bool {
		return b.BookingID == bookingID
	})
	return nil
}

type fakeRoomStore struct {
	order     []string // insertion order, stands in for store order
	rooms     map[string]*model.Room
	removeErr error // forced failure for RemoveBookedDate
	calls     int
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: map[string]*model.Room{}}
}

func (s *fakeRoomStore) add(id string, r model.Room) {
	if r.BookedDates == nil {
		r.BookedDates = []string{}
	}
	s.order = append(s.order, id)
	s.rooms[id] = &r
}

func (s *fakeRoomStore) List(_ context.Context, min, max float64) ([]model.Room, error) {
	s.calls++
	out := []model.Room{}
	for _, id := range s.order {
		if r := s.rooms[id]; r.PricePerNight >= min && r.PricePerNight <= max {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeRoomStore) Featured(_ context.Context, n int) ([]model.Room, error) {
	s.calls++
	out := []model.Room{}
	for _, id := range s.order {
		if len(out) == n {
			break
		}
		out = append(out, *s.rooms[id])
	}
	return out, nil
}

func (s *fakeRoomStore) GetByID(_ context.Context, id string) (model.Room, error) {
	s.calls++
	r, ok := s.rooms[id]
	if !ok {
		return model.Room{}, repository.ErrRoomNotFound
	}
	return *r, nil
}

func (s *fakeRoomStore) IsDateBooked(_ context.Context, id, date string) (bool, error) {
	s.calls++
	r, ok := s.rooms[id]
	if !ok {
		return false, nil
	}
	return slices.Contains(r.BookedDates, date), nil
}

func (s *fakeRoomStore) AddBookedDate(_ context.Context, id, date string) error {
	s.calls++
	r, ok := s.rooms[id]
	if !ok {
		return repository.ErrRoomNotFound
	}
	if slices.Contains(r.BookedDates, date) {
		return repository.ErrDateUnavailable
	}
	r.BookedDates = append(r.BookedDates, date)
	return nil
}

func (s *fakeRoomStore) RemoveBookedDate(_ context.Context, id, date string) error {
	s.calls++
	if s.removeErr != nil {
		return s.removeErr
	}
	r, ok := s.rooms[id]
	if !ok {
		return repository.ErrRoomNotFound
	}
	r.BookedDates = slices.DeleteFunc(r.BookedDates, func(d string) bool { return d == date })
	return nil
}
