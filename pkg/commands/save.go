package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/douanani/rihladz-admin/pkg/runner/save"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add [screen] [field=value...]",
		Short: "create a record on a screen",
		Example: `
rihladz add agencies name="Sahara Trails" email=contact@saharatrails.dz wilaya=Tamanrasset
rihladz add categories name="Desert Treks" description="guided multi-day treks"
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := save.ParseFields(args[1:])
			if err != nil {
				return oo.HandleError(err)
			}
			screens, err := loadScreens(false)
			if err != nil {
				return oo.HandleError(err)
			}
			table, ok := screens.Lookup(args[0])
			if !ok {
				return oo.HandleError(fmt.Errorf("unknown screen %q", args[0]))
			}
			s := save.Save{
				Table:  table,
				Fields: fields,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit [screen] [id] [field=value...]",
		Short: "update fields on an existing record",
		Example: `
rihladz edit agencies ag-123 phone="+213 555 010 203"
rihladz edit categories cat-7 description="coastal day trips"
`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := save.ParseFields(args[2:])
			if err != nil {
				return oo.HandleError(err)
			}
			screens, err := loadScreens(false)
			if err != nil {
				return oo.HandleError(err)
			}
			table, ok := screens.Lookup(args[0])
			if !ok {
				return oo.HandleError(fmt.Errorf("unknown screen %q", args[0]))
			}
			s := save.Save{
				Table:  table,
				ID:     args[1],
				Fields: fields,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
