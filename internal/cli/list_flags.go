package cli

import (
	"fmt"
	"strconv"

	"github.com/amorahq/amora-admin/pkg/adminsdk"

	"github.com/spf13/cobra"
)

// listFlags are the paging/filter flags shared by every list command.
// The active flag is tri-state: unset sends nothing, "true"/"false" filter.
type listFlags struct {
	page   int
	limit  int
	search string
	active string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 0, "page number")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "page size")
	cmd.Flags().StringVar(&f.search, "search", "", "free-text search")
	cmd.Flags().StringVar(&f.active, "active", "", "filter by active state (true or false)")
}

func (f *listFlags) query() (*adminsdk.Query, error) {
	q := adminsdk.NewQuery()
	if f.page > 0 {
		q.Set("page", f.page)
	}
	if f.limit > 0 {
		q.Set("limit", f.limit)
	}
	q.Set("search", f.search)

	if f.active != "" {
		active, err := strconv.ParseBool(f.active)
		if err != nil {
			return nil, fmt.Errorf("invalid --active value %q: %w", f.active, err)
		}
		q.Set("isActive", active)
	}
	return q, nil
}
