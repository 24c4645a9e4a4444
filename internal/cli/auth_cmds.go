package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/amorahq/amora-admin/pkg/adminsdk"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the admin API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				return fmt.Errorf("--email is required")
			}
			if password == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			env, err := a.client.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "logged in as %s %s <%s>\n",
				env.Data.User.FirstName, env.Data.User.LastName, env.Data.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email address")
	cmd.Flags().StringVar(&password, "password", "", "admin password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the stored token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if all {
				err = a.client.Auth.LogoutAll(cmd.Context())
			} else {
				err = a.client.Auth.Logout(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "logged out")
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "revoke every session, not just this one")
	return cmd
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.client.Credentials().Token()
			if err != nil {
				return err
			}
			if token == "" {
				fmt.Fprintln(a.out, "not logged in")
				return nil
			}

			claims, err := adminsdk.InspectToken(token)
			if err != nil {
				return fmt.Errorf("stored token is unreadable: %w", err)
			}

			who := claims.Email
			if who == "" {
				who = claims.Subject
			}
			fmt.Fprintf(a.out, "logged in as %s\n", who)
			if !claims.ExpiresAt.IsZero() {
				state := "expires"
				if claims.Expired() {
					state = "expired"
				}
				fmt.Fprintf(a.out, "session %s %s\n", state, formatTime(claims.ExpiresAt))
			}
			return nil
		},
	}
}
