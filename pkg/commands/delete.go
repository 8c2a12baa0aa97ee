package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/douanani/rihladz-admin/pkg/commands/options"
	"github.com/douanani/rihladz-admin/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "delete [screen] [id...]",
		Short: "delete one or more records from a screen",
		Example: `
rihladz delete agencies ag-123
rihladz delete tourists t-1 t-2 t-3 --yes
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			screens, err := loadScreens(false)
			if err != nil {
				return oo.HandleError(err)
			}
			table, ok := screens.Lookup(args[0])
			if !ok {
				return oo.HandleError(fmt.Errorf("unknown screen %q", args[0]))
			}
			s := remove.Remove{
				Table: table,
				IDs:   args[1:],
				Yes:   co.Yes,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
