package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/amorahq/amora-admin/pkg/adminsdk"

	"github.com/olekukonko/tablewriter"
)

// render writes rows as a table, or the raw envelope as indented JSON when
// --format json is selected.
func (a *app) render(headers []string, rows [][]string, envelope any) error {
	if a.cfg.Format == "json" {
		return printJSON(a.out, envelope)
	}

	table := tablewriter.NewWriter(a.out)
	table.SetHeader(headers)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

// renderPagination prints a one-line paging summary under a table.
func (a *app) renderPagination(p *adminsdk.Pagination) {
	if p == nil || a.cfg.Format == "json" {
		return
	}
	fmt.Fprintf(a.out, "page %d of %d (%d records)\n",
		p.CurrentPage, p.TotalPages, p.TotalRecords)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// renderFieldErrors prints field-level validation failures one per line so
// the admin can see exactly which inputs the server rejected, then returns
// the original error.
func renderFieldErrors(a *app, err error) error {
	var apiErr *adminsdk.APIError
	if errors.As(err, &apiErr) {
		for _, f := range apiErr.Fields {
			fmt.Fprintf(a.out, "  %s: %s\n", f.Field, f.Message)
		}
	}
	return err
}

func formatMoney(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}
