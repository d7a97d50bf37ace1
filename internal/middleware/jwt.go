package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/utils"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	CtxEmail  = "email"  // email claim of the authenticated caller
	CtxClaims = "claims" // full decoded claim set (jwt.MapClaims)
)

// JWTAuth returns an Echo middleware that gates protected routes behind
// a bearer token. A missing Authorization header is rejected immediately
// without touching any store; an invalid, expired or forged token is
// rejected after verification. On success the decoded email is attached
// to the context for the booking handlers.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.VerifyToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
			}

			c.Set(CtxEmail, utils.ClaimEmail(claims))
			c.Set(CtxClaims, claims)
			return next(c)
		}
	}
}
