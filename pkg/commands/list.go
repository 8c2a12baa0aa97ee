package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/douanani/rihladz-admin/pkg/commands/options"
	"github.com/douanani/rihladz-admin/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}
	fo := &options.OfflineOptions{}

	cmd := &cobra.Command{
		Use:   "list [screen]",
		Short: "list a screen's records",
		Example: `
rihladz list agencies
rihladz list tourists --query jo
rihladz list messages --page 2 --page-size 5
rihladz list reports --offline
`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: screenNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			screens, err := loadScreens(fo.Offline)
			if err != nil {
				return oo.HandleError(err)
			}
			table, ok := screens.Lookup(args[0])
			if !ok {
				return oo.HandleError(fmt.Errorf("unknown screen %q", args[0]))
			}
			s := list.List{
				Table:    table,
				Query:    qo.Query,
				Page:     qo.Page,
				PageSize: qo.PageSize,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddQueryArgs(cmd, qo)
	options.AddOfflineArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
