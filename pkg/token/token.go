// Package token inspects JWT access tokens on the client side. The
// backend remains the only verifier; this exists so the UI can show
// when a session will lapse, never to gate or refresh requests.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var errNoExpiry = errors.New("token carries no expiry claim")

// Expiry extracts the exp claim without verifying the signature.
func Expiry(raw string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}
