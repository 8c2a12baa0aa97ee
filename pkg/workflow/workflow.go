// Package workflow applies the report moderation lifecycle: every
// report starts pending and an admin moves it to reviewed or ignored.
// Nothing is structurally terminal; re-opening stays possible.
package workflow

import (
	"github.com/douanani/rihladz-admin/pkg/entity"
	"github.com/douanani/rihladz-admin/pkg/status"
)

// Tally counts reports per status. It is always computed by scanning
// the live collection, never kept incrementally.
type Tally struct {
	Pending  int
	Reviewed int
	Ignored  int
}

// Total returns the tally sum, which always equals the collection size.
func (t Tally) Total() int {
	return t.Pending + t.Reviewed + t.Ignored
}

// TallyOf scans the reports and counts each status.
func TallyOf(reports []entity.Report) Tally {
	var t Tally
	for _, r := range reports {
		switch r.Status {
		case status.Reviewed:
			t.Reviewed++
		case status.Ignored:
			t.Ignored++
		default:
			t.Pending++
		}
	}
	return t
}

// Transition validates the requested status change and returns the
// updated report. The input is unchanged on error.
func Transition(r entity.Report, target status.Report) (entity.Report, error) {
	if err := r.Status.CanTransition(target); err != nil {
		return r, err
	}
	r.Status = target
	return r, nil
}

// ValidateTransition checks a wire-level status change for a report.
func ValidateTransition(current status.Report, target string) error {
	parsed, err := status.ParseReport(target)
	if err != nil {
		return err
	}
	return current.CanTransition(parsed)
}
