// Package status defines the closed status vocabularies used by managed
// records, replacing loose string literals with typed variants and
// transition checks.
package status

import "fmt"

// Report is the moderation state of an abuse report.
type Report string

const (
	// Pending is the state every report is created in.
	Pending Report = "pending"
	// Reviewed marks a report handled by an admin.
	Reviewed Report = "reviewed"
	// Ignored marks a report dismissed by an admin.
	Ignored Report = "ignored"
)

// Valid reports whether r is a known report status.
func (r Report) Valid() bool {
	switch r {
	case Pending, Reviewed, Ignored:
		return true
	}
	return false
}

func (r Report) String() string {
	return string(r)
}

// ParseReport converts a wire value into a Report.
func ParseReport(s string) (Report, error) {
	r := Report(s)
	if !r.Valid() {
		return "", fmt.Errorf("status: unknown report status %q", s)
	}
	return r, nil
}

// CanTransition reports whether moving from r to target is allowed. Any
// known state may move to any other known state; re-opening a reviewed
// or ignored report is deliberate moderation flexibility. A same-state
// transition is rejected so callers do not issue no-op mutations.
func (r Report) CanTransition(target Report) error {
	if !r.Valid() {
		return fmt.Errorf("status: unknown report status %q", string(r))
	}
	if !target.Valid() {
		return fmt.Errorf("status: unknown report status %q", string(target))
	}
	if r == target {
		return fmt.Errorf("status: report already %s", target)
	}
	return nil
}
