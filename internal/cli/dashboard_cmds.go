package cli

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/amorahq/amora-admin/pkg/adminsdk"

	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform statistics",
	}
	cmd.AddCommand(newDashboardStatsCmd(a), newDashboardOverviewCmd(a))
	return cmd
}

func newDashboardStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the aggregated dashboard statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.client.Dashboard.Stats(cmd.Context())
			if err != nil {
				return err
			}

			s := env.Data
			rows := [][]string{
				{"Total users", fmt.Sprintf("%d", s.TotalUsers)},
				{"Active users", fmt.Sprintf("%d", s.ActiveUsers)},
				{"New users today", fmt.Sprintf("%d", s.NewUsersToday)},
				{"Total matches", fmt.Sprintf("%d", s.TotalMatches)},
				{"Active subscriptions", fmt.Sprintf("%d", s.ActiveSubscriptions)},
				{"Total revenue", fmt.Sprintf("%.2f", s.TotalRevenue)},
			}
			return a.render([]string{"Metric", "Value"}, rows, env)
		},
	}
}

// newDashboardOverviewCmd fetches the per-resource stats endpoints
// concurrently and joins the results, the same fan-out the web dashboard's
// landing page performs.
func newDashboardOverviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show per-resource statistics side by side",
		RunE: func(cmd *cobra.Command, _ []string) error {
			type statsFetch struct {
				name  string
				fetch func(context.Context) (*adminsdk.Envelope[map[string]any], error)
			}
			fetches := []statsFetch{
				{"users", a.client.Users.Stats},
				{"plans", a.client.Plans.Stats},
				{"matches", a.client.Matches.Stats},
				{"transactions", a.client.Transactions.Stats},
				{"subscriptions", a.client.Subscriptions.Stats},
			}

			results := make([]*adminsdk.Envelope[map[string]any], len(fetches))
			errs := make([]error, len(fetches))

			var wg sync.WaitGroup
			for i, f := range fetches {
				i, f := i, f
				wg.Add(1)
				go func() {
					defer wg.Done()
					results[i], errs[i] = f.fetch(cmd.Context())
				}()
			}
			wg.Wait()

			var rows [][]string
			for i, f := range fetches {
				if errs[i] != nil {
					return fmt.Errorf("failed to fetch %s stats: %w", f.name, errs[i])
				}
				keys := make([]string, 0, len(results[i].Data))
				for key := range results[i].Data {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					rows = append(rows, []string{f.name, key, fmt.Sprintf("%v", results[i].Data[key])})
				}
			}
			return a.render([]string{"Resource", "Metric", "Value"}, rows, results)
		},
	}
}
