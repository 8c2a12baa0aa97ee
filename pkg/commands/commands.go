package commands

import (
	"github.com/spf13/cobra"

	"github.com/douanani/rihladz-admin/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "rihladz",
		Short: "Administer the RihlaDz travel platform from the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addReview(topLevel)
	addRead(topLevel)
	addVersion(topLevel)

	topLevel.PersistentFlags().BoolVar(&oo.JSON, "json", false,
		"Output errors as JSON.")
}
