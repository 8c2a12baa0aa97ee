package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/douanani/rihladz-admin/pkg/entity"
	"github.com/douanani/rihladz-admin/pkg/printers"
	"github.com/douanani/rihladz-admin/pkg/screen"
	"github.com/douanani/rihladz-admin/pkg/workflow"
)

// Review changes one report's status and prints the refreshed tally.
type Review struct {
	Reports *screen.Controller[entity.Report]
	ID      string
	Target  string
}

func (n *Review) Do(ctx context.Context) error {
	if n.Reports == nil {
		return errors.New("can not review, no reports screen")
	}

	pp := printers.PrettyPrint{}

	if err := n.Reports.Load(ctx); err != nil {
		return err
	}

	report, ok := n.Reports.Store().Find(n.ID)
	if !ok {
		return fmt.Errorf("report %s not found", n.ID)
	}
	if err := workflow.ValidateTransition(report.Status, n.Target); err != nil {
		return err
	}

	inst := n.Reports.ChangeStatus(n.ID, n.Target)
	if inst == nil {
		return fmt.Errorf("report %s has a change already pending", n.ID)
	}
	if err := inst.Confirm(ctx); err != nil {
		return err
	}

	fmt.Println("")
	pp.Title("reports")
	pp.Tally(workflow.TallyOf(n.Reports.Items()))

	return nil
}
