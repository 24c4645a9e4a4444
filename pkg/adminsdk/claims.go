package adminsdk

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of bearer-token claims the SDK exposes for
// display purposes (who is logged in, when the session lapses).
type TokenClaims struct {
	Subject   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry, when present, has passed.
func (tc *TokenClaims) Expired() bool {
	return !tc.ExpiresAt.IsZero() && time.Now().After(tc.ExpiresAt)
}

// InspectToken reads the claims of a bearer token without verifying its
// signature. The server remains the authority on token validity; this is
// only for client-side display such as showing the logged-in admin and the
// session expiry.
func InspectToken(token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	tc := &TokenClaims{}

	if sub, err := claims.GetSubject(); err == nil {
		tc.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		tc.Email = email
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		tc.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		tc.ExpiresAt = exp.Time
	}

	return tc, nil
}
