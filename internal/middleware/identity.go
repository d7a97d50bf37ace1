package middleware

// identity.go holds the helper shared by the rate limiter for keying
// buckets per caller. Authenticated requests key on the token's email;
// everything else falls back to "guest".

import "github.com/labstack/echo/v4"

// callerIdentity returns the authenticated email from the context, or
// "guest" when the request did not pass through JWTAuth.
func callerIdentity(c echo.Context) string {
	if v, ok := c.Get(CtxEmail).(string); ok && v != "" {
		return v
	}
	return "guest"
}
