package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/amorahq/amora-admin/pkg/adminsdk"

	"github.com/spf13/cobra"
)

func newLoungesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lounges",
		Short: "Manage lounge venues",
	}
	cmd.AddCommand(
		newLoungesListCmd(a),
		newLoungesGetCmd(a),
		newLoungesUsersCmd(a),
		newLoungesSetActiveCmd(a),
		newLoungesUploadImageCmd(a),
	)
	return cmd
}

func newLoungesListCmd(a *app) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lounges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := flags.query()
			if err != nil {
				return err
			}
			env, err := a.client.Lounges.List(cmd.Context(), q)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(env.Data))
			for _, l := range env.Data {
				rows = append(rows, []string{
					l.ID,
					l.Name,
					l.City,
					strconv.Itoa(l.Capacity),
					formatBool(l.IsActive),
				})
			}
			if err := a.render([]string{"ID", "Name", "City", "Capacity", "Active"}, rows, env); err != nil {
				return err
			}
			a.renderPagination(env.Pagination)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newLoungesGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one lounge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.Lounges.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(a.out, env)
		},
	}
}

func newLoungesUsersCmd(a *app) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "users <id>",
		Short: "List the members assigned to a lounge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := flags.query()
			if err != nil {
				return err
			}
			env, err := a.client.Lounges.Users(cmd.Context(), args[0], q)
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

func newLoungesSetActiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <true|false>",
		Short: "Toggle a lounge's active flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", args[1])
			}
			env, err := a.client.Lounges.SetActive(cmd.Context(), args[0], active)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, env.Message)
			return nil
		},
	}
}

func newLoungesUploadImageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload-image <id> <file>",
		Short: "Attach a photo to a lounge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}
			defer f.Close()

			form := adminsdk.NewForm().AddFile("image", filepath.Base(args[1]), f)
			if err := a.client.Lounges.UploadImage(cmd.Context(), args[0], form); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "image uploaded")
			return nil
		},
	}
}
