package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/douanani/rihladz-admin/pkg/runner/review"
	"github.com/douanani/rihladz-admin/pkg/status"
)

func addReview(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "review [id] [status]",
		Short: "set an abuse report's status",
		Long:  "Set an abuse report to reviewed, ignored or back to pending.",
		Example: `
rihladz review r-42 reviewed
rihladz review r-42 ignored
rihladz review r-42 pending
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return err
			}
			_, err := status.ParseReport(args[1])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			screens, err := loadScreens(false)
			if err != nil {
				return oo.HandleError(err)
			}
			s := review.Review{
				Reports: screens.Reports,
				ID:      args[0],
				Target:  args[1],
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
