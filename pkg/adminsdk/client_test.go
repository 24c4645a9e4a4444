package adminsdk

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/amorahq/amora-admin/pkg/reqid"

	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	t.Run("explicit value wins", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "http://env.example.com")
		require.Equal(t, "http://explicit.example.com",
			ResolveBaseURL("http://explicit.example.com"))
	})

	t.Run("environment variable is used when set", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "http://env.example.com/api/")
		require.Equal(t, "http://env.example.com/api", ResolveBaseURL(""))
	})

	t.Run("falls back to the local default", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "")
		require.Equal(t, DefaultBaseURL, ResolveBaseURL(""))
	})
}

func TestBearerTokenInjection(t *testing.T) {
	t.Parallel()

	t.Run("stored token is sent as a bearer header", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK,
			`{"status":"success","message":"ok","data":{"id":"42","name":"x"}}`)
		require.NoError(t, client.Credentials().SetToken("abc123"))

		res := NewResource[widget](client, "/v1/widgets")
		_, err := res.Get(context.Background(), "42")
		require.NoError(t, err)
		require.Equal(t, "Bearer abc123", rec.Header.Get("Authorization"))
	})

	t.Run("no token means no authorization header", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK,
			`{"status":"success","message":"ok","data":[]}`)

		res := NewResource[widget](client, "/v1/widgets")
		_, err := res.List(context.Background(), nil)
		require.NoError(t, err)
		require.Empty(t, rec.Header.Get("Authorization"))
	})

	t.Run("every request carries a ULID request id", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK,
			`{"status":"success","message":"ok","data":[]}`)

		res := NewResource[widget](client, "/v1/widgets")
		_, err := res.List(context.Background(), nil)
		require.NoError(t, err)
		require.True(t, reqid.Valid(rec.Header.Get("X-Request-Id")))
	})
}

func TestAuthorizationFailureHandling(t *testing.T) {
	t.Parallel()

	t.Run("401 clears the stored token", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusUnauthorized,
			`{"status":"error","message":"Token expired"}`)
		require.NoError(t, client.Credentials().SetToken("stale"))

		res := NewResource[widget](client, "/v1/widgets")
		_, err := res.Get(context.Background(), "42")
		require.Error(t, err)

		token, storeErr := client.Credentials().Token()
		require.NoError(t, storeErr)
		require.Empty(t, token)
	})

	t.Run("401 fires the auth failure callback with the typed error", func(t *testing.T) {
		var got *APIError
		srvClient, _ := newTestClient(t, http.StatusUnauthorized,
			`{"status":"error","message":"Token expired"}`)
		client := New(Config{
			BaseURL:       srvClient.BaseURL(),
			OnAuthFailure: func(e *APIError) { got = e },
		})

		res := NewResource[widget](client, "/v1/widgets")
		_, err := res.Get(context.Background(), "42")
		require.Error(t, err)
		require.NotNil(t, got)
		require.True(t, got.IsAuthFailure())
		require.Equal(t, "Token expired", got.Message)
	})

	t.Run("the original error is re-raised, never swallowed", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusUnauthorized,
			`{"status":"error","message":"Token expired"}`)

		res := NewResource[widget](client, "/v1/widgets")
		_, err := res.Get(context.Background(), "42")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, "Token expired", apiErr.Message)
	})

	t.Run("without a callback only the token clear happens", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusUnauthorized, `{}`)
		require.NoError(t, client.Credentials().SetToken("stale"))

		res := NewResource[widget](client, "/v1/widgets")
		_, err := res.Get(context.Background(), "42")
		require.Error(t, err)

		token, _ := client.Credentials().Token()
		require.Empty(t, token)
	})
}

func TestUnparseableErrorBodyFallsBack(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusInternalServerError, `<html>oops</html>`)
	res := NewResource[widget](client, "/v1/widgets")

	_, err := res.Get(context.Background(), "42")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, "HTTP 500: Internal Server Error", apiErr.Message)
}

func TestNetworkFailureCarriesNoServerMessage(t *testing.T) {
	t.Parallel()

	client := New(Config{BaseURL: "http://127.0.0.1:1"})
	res := NewResource[widget](client, "/v1/widgets")

	_, err := res.Get(context.Background(), "42")
	require.Error(t, err)

	// Transport failures are not APIErrors; the caller substitutes its own
	// default message.
	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
}
