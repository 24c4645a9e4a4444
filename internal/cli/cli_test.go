package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, parseLevel("debug"))
	require.Equal(t, slog.LevelInfo, parseLevel("INFO"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelWarn, parseLevel("warn"))
	require.Equal(t, slog.LevelWarn, parseLevel(""))
	require.Equal(t, slog.LevelWarn, parseLevel("garbage"))
}

func TestListFlagsQuery(t *testing.T) {
	t.Parallel()

	t.Run("empty flags produce empty query", func(t *testing.T) {
		t.Parallel()

		f := &listFlags{}
		q, err := f.query()
		require.NoError(t, err)
		require.Empty(t, q.Encode())
	})

	t.Run("set flags serialize in order", func(t *testing.T) {
		t.Parallel()

		f := &listFlags{page: 2, limit: 25, search: "alice", active: "true"}
		q, err := f.query()
		require.NoError(t, err)
		require.Equal(t, "page=2&limit=25&search=alice&isActive=true", q.Encode())
	})

	t.Run("invalid active value is rejected", func(t *testing.T) {
		t.Parallel()

		f := &listFlags{active: "maybe"}
		_, err := f.query()
		require.ErrorContains(t, err, "invalid --active value")
	})
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := &app{cfg: &Config{Format: "table"}, out: &buf}

	err := a.render([]string{"ID", "Name"}, [][]string{
		{"1", "Basic"},
		{"2", "Premium"},
	}, nil)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "ID")
	require.Contains(t, out, "Premium")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := &app{cfg: &Config{Format: "json"}, out: &buf}

	err := a.render(nil, nil, map[string]string{"status": "success"})
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"success"}`, buf.String())
}

func TestFormatHelpers(t *testing.T) {
	t.Parallel()

	require.Equal(t, "yes", formatBool(true))
	require.Equal(t, "no", formatBool(false))
	require.Equal(t, "9.99 AUD", formatMoney(9.99, "AUD"))
	require.Equal(t, "9.99", formatMoney(9.99, ""))
}
