// Package cli implements the amorctl command tree: a terminal front-end for
// the Amora admin API built on the adminsdk client.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/amorahq/amora-admin/pkg/adminsdk"
	"github.com/amorahq/amora-admin/pkg/tokenstore"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

// app carries the wired-up client and settings shared by every command.
type app struct {
	cfg    *Config
	client *adminsdk.Client
	store  *tokenstore.Store
	logger *slog.Logger
	out    io.Writer
}

// Execute runs the amorctl command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{out: os.Stdout}

	root := &cobra.Command{
		Use:           "amorctl",
		Short:         "Administer the Amora dating platform",
		Long:          "amorctl manages plans, users, matches, lounges, date plans, subscriptions and email templates through the Amora admin API.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.String("api-url", "", "admin API base URL (overrides AMORA_API_URL)")
	flags.String("format", "", "output format: table or json")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newUsersCmd(a),
		newPlansCmd(a),
		newLoungesCmd(a),
		newMatchesCmd(a),
		newTransactionsCmd(a),
		newDatePlansCmd(a),
		newTemplatesCmd(a),
		newSubscriptionsCmd(a),
		newEmailTemplatesCmd(a),
		newDashboardCmd(a),
	)

	return root
}

// setup loads configuration, opens the credential store and builds the API
// client. Flags override file and environment settings.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		cfg.APIURL = v
	}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Format = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}

	a.cfg = cfg
	a.logger = newLogger(cfg.LogLevel)

	if err := os.MkdirAll(filepath.Dir(cfg.TokenDB), 0o700); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}
	store, err := tokenstore.Open(cfg.TokenDB)
	if err != nil {
		return err
	}
	a.store = store

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit)
	}

	a.client = adminsdk.New(adminsdk.Config{
		BaseURL:     cfg.APIURL,
		Credentials: store,
		Logger:      a.logger,
		Limiter:     limiter,
		OnAuthFailure: func(*adminsdk.APIError) {
			a.logger.Warn("session expired, run 'amorctl login' to sign in again")
		},
	})

	return nil
}

func (a *app) teardown() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("failed to close credential store", "error", err)
		}
	}
}
