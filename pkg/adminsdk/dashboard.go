package adminsdk

import (
	"context"
	"net/http"
)

const dashboardBase = "/v1/dashboard"

// DashboardStats aggregates the headline numbers shown on the admin landing
// page. MonthlySeries values feed chart rendering, which stays outside this
// package.
type DashboardStats struct {
	TotalUsers          int     `json:"totalUsers"`
	ActiveUsers         int     `json:"activeUsers"`
	NewUsersToday       int     `json:"newUsersToday"`
	TotalMatches        int     `json:"totalMatches"`
	ActiveSubscriptions int     `json:"activeSubscriptions"`
	TotalRevenue        float64 `json:"totalRevenue"`

	RevenueByMonth []MonthlyPoint `json:"revenueByMonth,omitempty"`
	SignupsByMonth []MonthlyPoint `json:"signupsByMonth,omitempty"`
}

// MonthlyPoint is one month of a dashboard time series.
type MonthlyPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// DashboardService reads the aggregate statistics under /v1/dashboard. The
// dashboard is not a CRUD resource; it only exposes reads.
type DashboardService struct {
	client *Client
}

func NewDashboardService(c *Client) *DashboardService {
	return &DashboardService{client: c}
}

// Stats fetches the aggregated dashboard statistics. Repeated calls against
// an unchanged backend return identical envelopes; the client performs no
// caching of its own.
func (s *DashboardService) Stats(ctx context.Context) (*Envelope[DashboardStats], error) {
	var env Envelope[DashboardStats]
	if err := s.client.doJSON(ctx, http.MethodGet, dashboardBase+"/stats", nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// RawStats fetches the same aggregate as an untyped record, for callers that
// render fields the typed struct does not model yet.
func (s *DashboardService) RawStats(ctx context.Context) (*Envelope[map[string]any], error) {
	var env Envelope[map[string]any]
	if err := s.client.doJSON(ctx, http.MethodGet, dashboardBase+"/stats", nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
