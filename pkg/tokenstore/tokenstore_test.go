package tokenstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "credentials.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)

	// Empty store yields an empty token, not an error.
	token, err := store.Token()
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, store.SetToken("tok-123"))
	token, err = store.Token()
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)

	// Overwrite replaces the previous value.
	require.NoError(t, store.SetToken("tok-456"))
	token, err = store.Token()
	require.NoError(t, err)
	require.Equal(t, "tok-456", token)
}

func TestClear(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)

	require.NoError(t, store.SetToken("tok-123"))
	require.NoError(t, store.Clear())

	token, err := store.Token()
	require.NoError(t, err)
	require.Empty(t, token)

	// Clearing an empty store is a no-op.
	require.NoError(t, store.Clear())
}

func TestTokenSurvivesReopen(t *testing.T) {
	t.Parallel()

	store, path := openTestStore(t)
	require.NoError(t, store.SetToken("persisted"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Token()
	require.NoError(t, err)
	require.Equal(t, "persisted", token)
}

func TestPing(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)
	require.NoError(t, store.Ping(context.Background()))
}
