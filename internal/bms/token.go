// internal/bms/token.go
package bms

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of the BMS-issued JWT this side cares about.
// The signature is NOT verified here: the BMS validates its own tokens on
// every call, so the claims are only used for display and for refusing to
// start a session with a token that is already expired.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// ParseTokenClaims decodes the JWT payload without verifying the signature.
func ParseTokenClaims(token string) (TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("bms: parse token: %w", err)
	}

	out := TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// Expired reports whether the claims carry an expiry in the past.
// A token without an exp claim is treated as unexpired.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
