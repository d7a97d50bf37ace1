package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/model"
	"github.com/iliyamo/room-booking/internal/repository"
)

// UserHandler implements user registration.
type UserHandler struct {
	Users UserStore
}

func NewUserHandler(users UserStore) *UserHandler { return &UserHandler{Users: users} }

type registerReq struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register handles POST /addUser. Registration is idempotent on email:
// a second call with a known email reports that the email exists and
// creates nothing, so a returning user signing in again is a 200, not a
// conflict.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	_, err := h.Users.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"message": "Email already exists in the database"})
	case !errors.Is(err, repository.ErrUserNotFound):
		slog.Error("register: lookup failed", "email", req.Email, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	u := model.User{
		UID:      req.UID,
		Name:     req.Name,
		Email:    req.Email,
		Bookings: []model.Booking{},
	}
	if err := h.Users.Create(ctx, u); err != nil {
		slog.Error("register: create failed", "email", req.Email, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully registered"})
}
