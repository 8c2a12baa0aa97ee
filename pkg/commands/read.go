package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/douanani/rihladz-admin/pkg/runner/read"
)

func addRead(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "read [id]",
		Short: "open a contact message, marking it read",
		Example: `
rihladz read m-7
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screens, err := loadScreens(false)
			if err != nil {
				return oo.HandleError(err)
			}
			s := read.Read{
				Messages: screens.Messages,
				ID:       args[0],
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
