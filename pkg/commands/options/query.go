// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// QueryOptions captures the filter and page-window flags shared by the
// listing commands.
type QueryOptions struct {
	Query    string
	Page     int
	PageSize int
}

// AddQueryArgs wires filter and paging flags on the provided command.
func AddQueryArgs(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Filter records by a case-insensitive substring.")
	cmd.Flags().IntVarP(&o.Page, "page", "p", 0,
		"Page to show, starting at 0.")
	cmd.Flags().IntVar(&o.PageSize, "page-size", 0,
		"Rows per page, 0 for the screen default.")
}
