package adminsdk

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInspectToken(t *testing.T) {
	t.Parallel()

	t.Run("reads subject, email and expiry", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		iat := time.Now().Truncate(time.Second)
		raw := signedTestToken(t, jwt.MapClaims{
			"sub":   "admin-1",
			"email": "admin@example.com",
			"iat":   iat.Unix(),
			"exp":   exp.Unix(),
		})

		tc, err := InspectToken(raw)
		require.NoError(t, err)
		require.Equal(t, "admin-1", tc.Subject)
		require.Equal(t, "admin@example.com", tc.Email)
		require.WithinDuration(t, exp, tc.ExpiresAt, time.Second)
		require.WithinDuration(t, iat, tc.IssuedAt, time.Second)
		require.False(t, tc.Expired())
	})

	t.Run("expired token reports expired", func(t *testing.T) {
		raw := signedTestToken(t, jwt.MapClaims{
			"sub": "admin-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		tc, err := InspectToken(raw)
		require.NoError(t, err)
		require.True(t, tc.Expired())
	})

	t.Run("token without expiry never reports expired", func(t *testing.T) {
		raw := signedTestToken(t, jwt.MapClaims{"sub": "admin-1"})

		tc, err := InspectToken(raw)
		require.NoError(t, err)
		require.False(t, tc.Expired())
	})

	t.Run("malformed token errors", func(t *testing.T) {
		_, err := InspectToken("not-a-jwt")
		require.Error(t, err)
	})
}
