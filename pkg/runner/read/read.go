package read

import (
	"context"
	"errors"
	"fmt"

	"github.com/douanani/rihladz-admin/pkg/entity"
	"github.com/douanani/rihladz-admin/pkg/printers"
	"github.com/douanani/rihladz-admin/pkg/screen"
)

// Read opens one contact message, marking it read on first view.
type Read struct {
	Messages *screen.Controller[entity.Message]
	ID       string
}

func (n *Read) Do(ctx context.Context) error {
	if n.Messages == nil {
		return errors.New("can not read, no messages screen")
	}

	pp := printers.PrettyPrint{}

	if err := n.Messages.Load(ctx); err != nil {
		return err
	}

	text, err := n.Messages.OpenDetails(ctx, n.ID)
	if err != nil {
		return err
	}

	fmt.Println("")
	pp.Details(text)
	pp.Summary(n.Messages.SummaryLine())

	return nil
}
