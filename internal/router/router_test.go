package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iliyamo/room-booking/internal/config"
	"github.com/iliyamo/room-booking/internal/handler"
	"github.com/iliyamo/room-booking/internal/model"
	"github.com/iliyamo/room-booking/internal/repository"
	"github.com/iliyamo/room-booking/internal/router"
)

// Minimal in-memory stores for exercising the full route table.

type memUsers struct {
	users map[string]*model.User
	calls int
}

func (s *memUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.calls++
	if u, ok := s.users[email]; ok {
		cp := *u
		cp.Bookings = slices.Clone(u.Bookings)
		return cp, nil
	}
	return model.User{}, repository.ErrUserNotFound
}

func (s *memUsers) Create(_ context.Context, u model.User) error {
	s.calls++
	cp := u
	s.users[u.Email] = &cp
	return nil
}

func (s *memUsers) AppendBooking(_ context.Context, email string, b model.Booking) error {
	s.calls++
	u, ok := s.users[email]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Bookings = append(u.Bookings, b)
	return nil
}

func (s *memUsers) RemoveBooking(_ context.Context, email, bookingID string) error {
	s.calls++
	u, ok := s.users[email]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Bookings = slices.DeleteFunc(u.Bookings, func(b model.Booking) bool { return b.BookingID == bookingID })
	return nil
}

type memRooms struct {
	rooms map[string]*model.Room
	calls int
}

func (s *memRooms) List(_ context.Context, min, max float64) ([]model.Room, error) {
	s.calls++
	out := []model.Room{}
	for _, r := range s.rooms {
		if r.PricePerNight >= min && r.PricePerNight <= max {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *memRooms) Featured(_ context.Context, n int) ([]model.Room, error) {
	s.calls++
	out := []model.Room{}
	for _, r := range s.rooms {
		if len(out) == n {
			break
		}
		out = append(out, *r)
	}
	return out, nil
}

func (s *memRooms) GetByID(_ context.Context, id string) (model.Room, error) {
	s.calls++
	if r, ok := s.rooms[id]; ok {
		return *r, nil
	}
	return model.Room{}, repository.ErrRoomNotFound
}

func (s *memRooms) IsDateBooked(_ context.Context, id, date string) (bool, error) {
	s.calls++
	if r, ok := s.rooms[id]; ok {
		return slices.Contains(r.BookedDates, date), nil
	}
	return false, nil
}

func (s *memRooms) AddBookedDate(_ context.Context, id, date string) error {
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

func (s *memRooms) RemoveBookedDate(_ context.Context, id, date string) error {
	s.calls++
	r, ok := s.rooms[id]
	if !ok {
		return repository.ErrRoomNotFound
	}
	r.BookedDates = slices.DeleteFunc(r.BookedDates, func(d string) bool { return d == date })
	return nil
}

type testEnv struct {
	e     *echo.Echo
	users *memUsers
	rooms *memRooms
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	users := &memUsers{users: map[string]*model.User{}}
	rooms := &memRooms{rooms: map[string]*model.Room{
		"r1": {Title: "Sea View", PricePerNight: 100, RoomSize: "1200 sq ft", BookedDates: []string{}},
	}}
	cfg := config.Config{Env: "test", Port: "0", JWTSecret: "test-secret"}
	h := router.Handlers{
		Token:   handler.NewTokenHandler(cfg.JWTSecret),
		User:    handler.NewUserHandler(users),
		Room:    handler.NewRoomHandler(rooms),
		Booking: handler.NewBookingHandler(users, rooms, nil),
	}
	e := echo.New()
	router.Register(e, h, cfg, nil, prometheus.NewRegistry())
	return &testEnv{e: e, users: users, rooms: rooms}
}

func (env *testEnv) request(method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func TestLiveness(t *testing.T) {
	env := newEnv(t)
	rec := env.request(http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Body.String(); got != "Rooms Server is Online" {
		t.Errorf("body = %q", got)
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	env := newEnv(t)
	cases := []struct{ method, target string }{
		{http.MethodPost, "/bookRoom"},
		{http.MethodGet, "/my-bookings"},
		{http.MethodDelete, "/cancel-booking/r1"},
	}
	for _, tc := range cases {
		rec := env.request(tc.method, tc.target, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tc.method, tc.target, rec.Code)
		}
	}
	if env.users.calls != 0 || env.rooms.calls != 0 {
		t.Errorf("stores were touched by unauthenticated requests: users=%d rooms=%d",
			env.users.calls, env.rooms.calls)
	}
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	env := newEnv(t)
	cases := []struct {
		method, target, body string
	}{
		{http.MethodPost, "/jwt", `{"email":"a@b.com"}`},
		{http.MethodPost, "/addUser", `{"uid":"u1","name":"A","email":"a@b.com"}`},
		{http.MethodGet, "/rooms", ""},
		{http.MethodGet, "/featured", ""},
		{http.MethodGet, "/rooms/r1", ""},
		{http.MethodPost, "/checkAvailability", `{"roomId":"r1","bookingDate":"2099-01-01"}`},
	}
	for _, tc := range cases {
		rec := env.request(tc.method, tc.target, tc.body, "")
		if rec.Code == http.StatusUnauthorized {
			t.Errorf("%s %s unexpectedly requires auth", tc.method, tc.target)
		}
	}
}

// Full booking lifecycle through the real route table.
func TestBookingLifecycle(t *testing.T) {
	env := newEnv(t)
	date := time.Now().UTC().AddDate(0, 0, 30).Format("2006-01-02")

	// Register.
	rec := env.request(http.MethodPost, "/addUser", `{"uid":"u1","name":"Alice","email":"a@b.com"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("register: status = %d", rec.Code)
	}

	// Issue a token.
	rec = env.request(http.MethodPost, "/jwt", `{"email":"a@b.com"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("jwt: status = %d", rec.Code)
	}
	var tokenResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tokenResp); err != nil || tokenResp.Token == "" {
		t.Fatalf("jwt: bad response %q (%v)", rec.Body.String(), err)
	}
	token := tokenResp.Token

	// Book room r1.
	rec = env.request(http.MethodPost, "/bookRoom", `{"roomId":"r1","bookingDate":"`+date+`"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("book: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// The date is now unavailable.
	rec = env.request(http.MethodPost, "/checkAvailability", `{"roomId":"r1","bookingDate":"`+date+`"}`, "")
	var avail struct {
		Available bool `json:"available"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &avail); err != nil {
		t.Fatalf("availability: %v", err)
	}
	if avail.Available {
		t.Error("booked date still reported available")
	}

	// A second booking for the same date conflicts.
	rec = env.request(http.MethodPost, "/bookRoom", `{"roomId":"r1","bookingDate":"`+date+`"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("double booking: status = %d, want 400", rec.Code)
	}

	// My bookings shows exactly one entry.
	rec = env.request(http.MethodGet, "/my-bookings", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("my-bookings: status = %d", rec.Code)
	}
	var bookings []model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &bookings); err != nil {
		t.Fatalf("my-bookings: %v", err)
	}
	if len(bookings) != 1 || bookings[0].RoomID != "r1" || bookings[0].BookingDate != date {
		t.Fatalf("my-bookings = %+v", bookings)
	}

	// Cancel it.
	rec = env.request(http.MethodDelete, "/cancel-booking/r1", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Both records are clean again.
	rec = env.request(http.MethodGet, "/my-bookings", "", token)
	if err := json.Unmarshal(rec.Body.Bytes(), &bookings); err != nil {
		t.Fatalf("my-bookings after cancel: %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("bookings after cancel = %+v, want none", bookings)
	}
	if slices.Contains(env.rooms.rooms["r1"].BookedDates, date) {
		t.Error("room still holds the cancelled date")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newEnv(t)
	env.request(http.MethodGet, "/rooms", "", "")
	rec := env.request(http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "rooms_http_requests_total") {
		t.Error("metrics output missing request counter")
	}
}
