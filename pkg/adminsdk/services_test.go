package adminsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServiceBasePaths(t *testing.T) {
	t.Parallel()

	client := New(Config{BaseURL: "http://example.com"})

	require.Equal(t, "/v1/plans", client.Plans.Base())
	require.Equal(t, "/v1/users", client.Users.Base())
	require.Equal(t, "/v1/matches", client.Matches.Base())
	require.Equal(t, "/v1/transactions", client.Transactions.Base())
	require.Equal(t, "/v1/lounges", client.Lounges.Base())
	require.Equal(t, "/v1/date-plans", client.DatePlans.Base())
	require.Equal(t, "/v1/date-plan-templates", client.DatePlanTemplates.Base())
	require.Equal(t, "/v1/subscriptions", client.Subscriptions.Base())
	require.Equal(t, "/v1/email-templates", client.EmailTemplates.Base())
}

func TestLoungeUsers(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, http.StatusOK,
		`{"status":"success","message":"ok","data":[{"id":"u1","email":"a@b.c"}]}`)

	env, err := client.Lounges.Users(context.Background(), "l-9", NewQuery().Set("page", 1))
	require.NoError(t, err)
	require.Equal(t, "/v1/lounges/l-9/users", rec.Path)
	require.Equal(t, "page=1", rec.Query)
	require.Len(t, env.Data, 1)
	require.Equal(t, "u1", env.Data[0].ID)
}

func TestUserSetActive(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, http.StatusOK,
		`{"status":"success","message":"ok","data":{"id":"u1","isActive":false}}`)

	_, err := client.Users.SetActive(context.Background(), "u1", false)
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, rec.Method)
	require.Equal(t, "/v1/users/u1/status", rec.Path)
	require.JSONEq(t, `{"isActive":false}`, string(rec.Body))
}

func TestMatchesForUser(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, http.StatusOK,
		`{"status":"success","message":"ok","data":[]}`)

	_, err := client.Matches.ForUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "/v1/matches", rec.Path)
	require.Equal(t, "userId=u1", rec.Query)
}

func TestEmailTemplateSendTest(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, http.StatusOK,
		`{"status":"success","message":"test email queued"}`)

	env, err := client.EmailTemplates.SendTest(context.Background(), "tpl-1", "qa@example.com")
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, rec.Method)
	require.Equal(t, "/v1/email-templates/tpl-1/send-test", rec.Path)

	var sent map[string]string
	require.NoError(t, json.Unmarshal(rec.Body, &sent))
	require.Equal(t, "qa@example.com", sent["recipient"])
	require.Equal(t, "test email queued", env.Message)
}

func TestEmailTemplatePreview(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, http.StatusOK,
		`{"status":"success","message":"ok","data":{"subject":"Hi Alice","body":"Welcome, Alice!"}}`)

	env, err := client.EmailTemplates.Preview(context.Background(), "tpl-1", map[string]string{"firstName": "Alice"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, rec.Method)
	require.Equal(t, "/v1/email-templates/tpl-1/preview", rec.Path)
	require.JSONEq(t, `{"variables":{"firstName":"Alice"}}`, string(rec.Body))
	require.Equal(t, "Hi Alice", env.Data.Subject)
	require.Equal(t, "Welcome, Alice!", env.Data.Body)
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, http.StatusOK,
		`{"status":"success","message":"ok","data":{
			"totalUsers":120,"activeUsers":80,"totalRevenue":999.5,
			"revenueByMonth":[{"month":"2026-07","value":420.5}]}}`)

	env, err := client.Dashboard.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/v1/dashboard/stats", rec.Path)
	require.Equal(t, 120, env.Data.TotalUsers)
	require.Equal(t, 999.5, env.Data.TotalRevenue)
	require.Len(t, env.Data.RevenueByMonth, 1)
	require.Equal(t, "2026-07", env.Data.RevenueByMonth[0].Month)
}

func TestPlanUploadImage(t *testing.T) {
	t.Parallel()

	t.Run("without id posts to the plan base", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK,
			`{"status":"success","message":"ok","data":{}}`)

		err := client.Plans.UploadImage(context.Background(), "", NewForm().Set("name", "Gold"))
		require.NoError(t, err)
		require.Equal(t, http.MethodPost, rec.Method)
		require.Equal(t, "/v1/plans", rec.Path)
	})

	t.Run("with id puts to the plan itself", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK,
			`{"status":"success","message":"ok","data":{}}`)

		err := client.Plans.UploadImage(context.Background(), "p-3", NewForm().Set("name", "Gold"))
		require.NoError(t, err)
		require.Equal(t, http.MethodPut, rec.Method)
		require.Equal(t, "/v1/plans/p-3", rec.Path)
	})
}
