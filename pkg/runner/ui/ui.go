package ui

import (
	"context"
	"errors"

	"github.com/douanani/rihladz-admin/pkg/screen"
	teaui "github.com/douanani/rihladz-admin/pkg/tui/app"
)

type UI struct {
	Screens *screen.Screens
}

func (n *UI) Do(ctx context.Context) error {
	if n.Screens == nil {
		return errors.New("can not open ui, no screens")
	}
	return teaui.Run(ctx, n.Screens)
}
