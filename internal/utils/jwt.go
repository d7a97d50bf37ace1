package utils // package utils provides helpers for token issuing and date handling

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// tokenTTL is how long an issued token stays valid. The booking API hands
// out short-lived tokens only; there is no refresh flow.
const tokenTTL = time.Hour

// ErrInvalidToken is returned by VerifyToken for any token that cannot be
// accepted: malformed, expired, or signed with the wrong key. Callers map
// it to HTTP 401.
var ErrInvalidToken = errors.New("invalid token")

// IssueToken builds and signs an HS256 JWT embedding the caller-supplied
// claim set as-is. Claim contents are not validated; the frontend sends
// whatever identity payload it holds (expected to include "email"). The
// token expires exactly one hour after issuance.
func IssueToken(secret string, claims map[string]interface{}) (string, error) {
	now := time.Now().UTC()
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	// exp and iat always come from the clock, even if the caller sent them.
	mc["exp"] = now.Add(tokenTTL).Unix()
	mc["iat"] = now.Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString([]byte(secret))
}

// VerifyToken validates the signature and expiry of a token and returns
// the embedded claims. Any failure collapses into ErrInvalidToken so the
// caller cannot leak why verification failed.
func VerifyToken(secret, raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC to avoid
		// algorithm-substitution tricks.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ClaimEmail pulls the "email" claim out of a verified claim set. The
// empty string means the token carried no usable email.
func ClaimEmail(claims jwt.MapClaims) string {
	if v, ok := claims["email"].(string); ok {
		return v
	}
	return ""
}
