package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/douanani/rihladz-admin/pkg/commands/options"
	"github.com/douanani/rihladz-admin/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	fo := &options.OfflineOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based admin console",
		Example: `
rihladz ui
rihladz ui --offline
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			screens, err := loadScreens(fo.Offline)
			if err != nil {
				return err
			}
			i := ui.UI{Screens: screens}
			return i.Do(context.Background())
		},
	}

	options.AddOfflineArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
