package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/amorahq/amora-admin/pkg/adminsdk"

	"github.com/spf13/cobra"
)

func newPlansCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage subscription plans",
	}
	cmd.AddCommand(
		newPlansListCmd(a),
		newPlansGetCmd(a),
		newPlansCreateCmd(a),
		newPlansUpdateCmd(a),
		newPlansSetActiveCmd(a),
		newPlansDeleteCmd(a),
		newPlansUploadImageCmd(a),
	)
	return cmd
}

func newPlansListCmd(a *app) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := flags.query()
			if err != nil {
				return err
			}
			env, err := a.client.Plans.List(cmd.Context(), q)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(env.Data))
			for _, p := range env.Data {
				rows = append(rows, []string{
					p.ID,
					p.Name,
					formatMoney(p.Price, p.Currency),
					strconv.Itoa(p.DurationDays) + "d",
					formatBool(p.IsActive),
				})
			}
			if err := a.render([]string{"ID", "Name", "Price", "Duration", "Active"}, rows, env); err != nil {
				return err
			}
			a.renderPagination(env.Pagination)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newPlansGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.Plans.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(a.out, env)
		},
	}
}

// readEntityFile loads a JSON entity body from a file, used by create and
// update commands so complex bodies don't have to be passed on the command
// line.
func readEntityFile(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%s is not a JSON object: %w", path, err)
	}
	return body, nil
}

func newPlansCreateCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create --file plan.json",
		Short: "Create a plan from a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := readEntityFile(file)
			if err != nil {
				return err
			}
			env, err := a.client.Plans.Create(cmd.Context(), body)
			if err != nil {
				return renderFieldErrors(a, err)
			}
			fmt.Fprintf(a.out, "created plan %s\n", env.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path of the plan JSON body")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newPlansUpdateCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id> --file plan.json",
		Short: "Update a plan from a partial JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readEntityFile(file)
			if err != nil {
				return err
			}
			env, err := a.client.Plans.Update(cmd.Context(), args[0], body)
			if err != nil {
				return renderFieldErrors(a, err)
			}
			fmt.Fprintln(a.out, env.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path of the partial plan JSON body")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newPlansSetActiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <true|false>",
		Short: "Toggle a plan's active flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", args[1])
			}
			env, err := a.client.Plans.SetActive(cmd.Context(), args[0], active)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, env.Message)
			return nil
		},
	}
}

func newPlansDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			env, err := a.client.Plans.Delete(cmd.Context(), args[0])
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

func newPlansUploadImageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload-image <id> <file>",
		Short: "Attach a promotional image to a plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}
			defer f.Close()

			form := adminsdk.NewForm().AddFile("image", filepath.Base(args[1]), f)
			if err := a.client.Plans.UploadImage(cmd.Context(), args[0], form); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "image uploaded")
			return nil
		},
	}
}
