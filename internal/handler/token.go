package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/utils"
)

// TokenHandler issues access tokens. The endpoint is public: it signs
// whatever claim payload the frontend holds after its external sign-in,
// mirroring how the booking frontend exchanges its auth state for an API
// token. Claim contents are trusted as-is.
type TokenHandler struct {
	Secret string
}

func NewTokenHandler(secret string) *TokenHandler { return &TokenHandler{Secret: secret} }

// Issue handles POST /jwt. The body is an arbitrary JSON object used as
// the claim set; the response is {"token": "<jwt>"} valid for one hour.
func (h *TokenHandler) Issue(c echo.Context) error {
	claims := map[string]interface{}{}
	if err := c.Bind(&claims); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	token, err := utils.IssueToken(h.Secret, claims)
	if err != nil {
		slog.Error("issue token failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
