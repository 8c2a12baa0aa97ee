package remove

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/douanani/rihladz-admin/pkg/gate"
	"github.com/douanani/rihladz-admin/pkg/printers"
	"github.com/douanani/rihladz-admin/pkg/screen"
)

type Remove struct {
	Table screen.Table
	IDs   []string
	// Yes skips the confirmation prompt.
	Yes bool
	// In is the confirmation input, stdin by default.
	In io.Reader
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Table == nil {
		return errors.New("can not remove, no screen")
	}
	if len(n.IDs) == 0 {
		return errors.New("can not remove, no ids given")
	}

	pp := printers.PrettyPrint{}

	if err := n.Table.Load(ctx); err != nil {
		return err
	}

	var inst *gate.Instance
	if len(n.IDs) == 1 {
		inst = n.Table.Delete(n.IDs[0])
	} else {
		inst = n.Table.DeleteMany(n.IDs)
	}
	if inst == nil {
		return fmt.Errorf("remove not started: %s", lastProblem(n.Table))
	}

	if !n.Yes && !n.confirm(inst.Prompt()) {
		inst.Decline()
		pp.Notice("Cancelled")
		return nil
	}

	if err := inst.Confirm(ctx); err != nil {
		return err
	}
	pp.Notice("Removed %d, %d %s remaining", len(n.IDs), n.Table.Total(), n.Table.Name())
	return nil
}

func (n *Remove) confirm(prompt string) bool {
	in := n.In
	if in == nil {
		in = os.Stdin
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func lastProblem(t screen.Table) string {
	if err := t.LoadErr(); err != nil {
		return err.Error()
	}
	return "record not found or already pending"
}
