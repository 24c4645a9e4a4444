package cli

import (
	"fmt"

	"github.com/amorahq/amora-admin/pkg/adminsdk"

	"github.com/spf13/cobra"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage platform members",
	}
	cmd.AddCommand(
		newUsersListCmd(a),
		newUsersGetCmd(a),
		newUsersSetActiveCmd(a, "activate", true),
		newUsersSetActiveCmd(a, "deactivate", false),
		newUsersDeleteCmd(a),
	)
	return cmd
}

func newUsersListCmd(a *app) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := flags.query()
			if err != nil {
				return err
			}
			env, err := a.client.Users.List(cmd.Context(), q)
			if err != nil {
				return err
			}

			if err := a.render(userHeaders, userRows(env.Data), env); err != nil {
				return err
			}
			a.renderPagination(env.Pagination)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newUsersGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.Users.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(a.out, env)
		},
	}
}

func newUsersSetActiveCmd(a *app, use string, active bool) *cobra.Command {
	short := "Deactivate a user account"
	if active {
		short = "Reactivate a user account"
	}
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.Users.SetActive(cmd.Context(), args[0], active)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, env.Message)
			return nil
		},
	}
}

func newUsersDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			env, err := a.client.Users.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, env.Message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}

// userHeaders and userRows are shared with the lounges command, which lists
// members of a venue with the same columns.
var userHeaders = []string{"ID", "Name", "Email", "City", "Verified", "Active", "Joined"}

func userRows(users []adminsdk.User) [][]string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.ID,
			u.FirstName + " " + u.LastName,
			u.Email,
			u.City,
			formatBool(u.IsVerified),
			formatBool(u.IsActive),
			formatTime(u.CreatedAt),
		})
	}
	return rows
}
