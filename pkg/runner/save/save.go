package save

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/douanani/rihladz-admin/pkg/printers"
	"github.com/douanani/rihladz-admin/pkg/screen"
)

// Save creates a record when ID is empty, or merges Fields into an
// existing one.
type Save struct {
	Table  screen.Table
	ID     string
	Fields map[string]string
}

func (n *Save) Do(ctx context.Context) error {
	if n.Table == nil {
		return errors.New("can not save, no screen")
	}
	if len(n.Fields) == 0 {
		return errors.New("can not save, no fields given")
	}

	pp := printers.PrettyPrint{}

	if err := n.Table.Load(ctx); err != nil {
		return err
	}

	if err := n.Table.Patch(ctx, n.ID, n.Fields); err != nil {
		return err
	}

	if n.ID == "" {
		pp.Notice("Created %s", n.Table.Singular())
	} else {
		pp.Notice("Updated %s %s", n.Table.Singular(), n.ID)
	}
	return nil
}

// ParseFields turns key=value arguments into a field map.
func ParseFields(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		fields[key] = value
	}
	return fields, nil
}
