package options

import (
	"github.com/spf13/cobra"
)

// OfflineOptions
type OfflineOptions struct {
	Offline bool
}

func AddOfflineArgs(cmd *cobra.Command, o *OfflineOptions) {
	cmd.Flags().BoolVar(&o.Offline, "offline", false,
		"Browse the last cached snapshot instead of calling the API.")
}
