package cli

import (
	"fmt"
	"strings"

	"github.com/amorahq/amora-admin/pkg/adminsdk"

	"github.com/spf13/cobra"
)

func newMatchesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Inspect matches between members",
	}

	var userID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List matches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := a.client.Matches
			var env *adminsdk.ListEnvelope[adminsdk.Match]
			var err error
			if userID != "" {
				env, err = svc.ForUser(cmd.Context(), userID)
			} else {
				env, err = svc.List(cmd.Context(), nil)
			}
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(env.Data))
			for _, m := range env.Data {
				rows = append(rows, []string{
					m.ID, m.InitiatorID, m.PartnerID, m.Status, formatTime(m.MatchedAt),
				})
			}
			if err := a.render([]string{"ID", "Initiator", "Partner", "Status", "Matched"}, rows, env); err != nil {
				return err
			}
			a.renderPagination(env.Pagination)
			return nil
		},
	}
	list.Flags().StringVar(&userID, "user", "", "only matches involving this user")

	cmd.AddCommand(list)
	return cmd
}

func newTransactionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Inspect payment records",
	}

	var userID, status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := a.client.Transactions
			var env *adminsdk.ListEnvelope[adminsdk.Transaction]
			var err error
			switch {
			case userID != "":
				env, err = svc.ForUser(cmd.Context(), userID)
			case status != "":
				env, err = svc.ByStatus(cmd.Context(), status)
			default:
				env, err = svc.List(cmd.Context(), nil)
			}
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(env.Data))
			for _, tx := range env.Data {
				rows = append(rows, []string{
					tx.ID, tx.UserID, formatMoney(tx.Amount, tx.Currency),
					tx.Status, tx.Provider, formatTime(tx.CreatedAt),
				})
			}
			if err := a.render([]string{"ID", "User", "Amount", "Status", "Provider", "Date"}, rows, env); err != nil {
				return err
			}
			a.renderPagination(env.Pagination)
			return nil
		},
	}
	list.Flags().StringVar(&userID, "user", "", "only transactions of this user")
	list.Flags().StringVar(&status, "status", "", "only transactions in this state")

	cmd.AddCommand(list)
	return cmd
}

func newDatePlansCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date-plans",
		Short: "Manage scheduled dates",
	}

	var upcoming bool
	var matchID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List date plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := a.client.DatePlans
			var env *adminsdk.ListEnvelope[adminsdk.DatePlan]
			var err error
			switch {
			case matchID != "":
				env, err = svc.ForMatch(cmd.Context(), matchID)
			case upcoming:
				env, err = svc.Upcoming(cmd.Context())
			default:
				env, err = svc.List(cmd.Context(), nil)
			}
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(env.Data))
			for _, d := range env.Data {
				rows = append(rows, []string{
					d.ID, d.Title, d.LoungeID, d.Status, formatTime(d.ScheduledAt),
				})
			}
			if err := a.render([]string{"ID", "Title", "Lounge", "Status", "Scheduled"}, rows, env); err != nil {
				return err
			}
			a.renderPagination(env.Pagination)
			return nil
		},
	}
	list.Flags().BoolVar(&upcoming, "upcoming", false, "only dates scheduled from now on")
	list.Flags().StringVar(&matchID, "match", "", "only dates for this match")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one date plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.DatePlans.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(a.out, env)
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date-plan-templates",
		Short: "Manage reusable date outlines",
	}

	var category string
	list := &cobra.Command{
		Use:   "list",
		Short: "List date-plan templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := a.client.DatePlanTemplates
			var env *adminsdk.ListEnvelope[adminsdk.DatePlanTemplate]
			var err error
			if category != "" {
				env, err = svc.ByCategory(cmd.Context(), category)
			} else {
				env, err = svc.List(cmd.Context(), nil)
			}
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(env.Data))
			for _, tpl := range env.Data {
				rows = append(rows, []string{
					tpl.ID, tpl.Title, tpl.Category,
					fmt.Sprintf("%d", len(tpl.Steps)), formatBool(tpl.IsActive),
				})
			}
			if err := a.render([]string{"ID", "Title", "Category", "Steps", "Active"}, rows, env); err != nil {
				return err
			}
			a.renderPagination(env.Pagination)
			return nil
		},
	}
	list.Flags().StringVar(&category, "category", "", "only templates in this category")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.DatePlanTemplates.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(a.out, env)
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func newSubscriptionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscriptions",
		Short: "Inspect member subscriptions",
	}

	var userID string
	var activeOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := a.client.Subscriptions
			var env *adminsdk.ListEnvelope[adminsdk.Subscription]
			var err error
			switch {
			case userID != "":
				env, err = svc.ForUser(cmd.Context(), userID)
			case activeOnly:
				env, err = svc.Active(cmd.Context())
			default:
				env, err = svc.List(cmd.Context(), nil)
			}
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(env.Data))
			for _, sub := range env.Data {
				rows = append(rows, []string{
					sub.ID, sub.UserID, sub.PlanID, sub.Status,
					formatBool(sub.AutoRenew), formatTime(sub.EndsAt),
				})
			}
			if err := a.render([]string{"ID", "User", "Plan", "Status", "Auto-renew", "Ends"}, rows, env); err != nil {
				return err
			}
			a.renderPagination(env.Pagination)
			return nil
		},
	}
	list.Flags().StringVar(&userID, "user", "", "only subscriptions of this user")
	list.Flags().BoolVar(&activeOnly, "active", false, "only active subscriptions")

	cmd.AddCommand(list)
	return cmd
}

func newEmailTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email-templates",
		Short: "Manage transactional email templates",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List email templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.client.EmailTemplates.List(cmd.Context(), nil)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(env.Data))
			for _, tpl := range env.Data {
				rows = append(rows, []string{
					tpl.ID, tpl.Name, tpl.Subject, formatBool(tpl.IsActive),
				})
			}
			return a.render([]string{"ID", "Name", "Subject", "Active"}, rows, env)
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one email template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.EmailTemplates.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(a.out, env)
		},
	}

	sendTest := &cobra.Command{
		Use:   "send-test <id> <recipient>",
		Short: "Send a rendered test email to one recipient",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.EmailTemplates.SendTest(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, env.Message)
			return nil
		},
	}

	var vars []string
	preview := &cobra.Command{
		Use:   "preview <id>",
		Short: "Render a template with sample variable values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(vars))
			for _, kv := range vars {
				key, value, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("expected key=value, got %q", kv)
				}
				values[key] = value
			}

			env, err := a.client.EmailTemplates.Preview(cmd.Context(), args[0], values)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Subject: %s\n\n%s\n", env.Data.Subject, env.Data.Body)
			return nil
		},
	}
	preview.Flags().StringArrayVar(&vars, "var", nil, "template variable as key=value (repeatable)")

	cmd.AddCommand(list, get, preview, sendTest)
	return cmd
}
