// Package screen binds the list-management pieces: store, filter
// projection, selection tracker, destructive-action gate and
// notification feed, into one controller, and configures that
// controller for each of the console's data-grid screens.
package screen

import (
	"context"
	"fmt"

	"github.com/douanani/rihladz-admin/pkg/gate"
)

// ValidationError reports a create/edit submission with a missing
// required field. It is raised before any gateway call, so the
// collection is never touched.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("screen: %s is required", e.Field)
}

// Column maps a grid column title to the entity field it renders.
type Column struct {
	Title string
	Field string
}

// Config describes one data-grid screen.
type Config struct {
	// Name is the plural screen name, e.g. "agencies".
	Name string
	// Singular is used in prompts and notifications.
	Singular string
	// LabelField names the field used to describe a record to the user.
	LabelField string
	// MatchFields are the fields the free-text query searches.
	MatchFields []string
	// Columns are the grid columns, in render order.
	Columns []Column
	// PageSizes are the selectable rows-per-page values.
	PageSizes []int
	// RequiredFields must be present and non-blank when a record is
	// created, and may not be blanked by an edit.
	RequiredFields []string
	// StatusTargets are the admin status actions, empty when the screen
	// has none.
	StatusTargets []string
	// ValidateStatus checks a proposed status change against the
	// record's current status. nil disables status actions.
	ValidateStatus func(current, target string) error
	// MarksReadOnView flips the record's status to read the first time
	// its details are opened.
	MarksReadOnView bool
	// CanRefresh exposes an explicit refresh action on the screen.
	CanRefresh bool
}

// Table is the kind-erased surface the CLI runners and the TUI drive.
// Every method is implemented by Controller regardless of entity kind.
type Table interface {
	Name() string
	Singular() string
	Columns() []Column
	PageSizes() []int
	StatusTargets() []string
	CanRefresh() bool

	Load(ctx context.Context) error
	BeginLoad()
	Fetch(ctx context.Context) func() error
	Loading() bool
	LoadErr() error

	Query() string
	SetQuery(q string)
	PageIndex() int
	PageSize() int
	SetPageSize(n int)
	NextPage()
	PrevPage()
	PageCount() int
	TotalFiltered() int
	Total() int
	Rows() [][]string
	RowIDs() []string

	Toggle(id string)
	ToggleAll()
	Selected(id string) bool
	SelectedIDs() []string
	SelectionCount() int
	AllSelected() bool
	Indeterminate() bool

	Delete(id string) *gate.Instance
	DeleteMany(ids []string) *gate.Instance
	DeleteSelected() *gate.Instance
	ChangeStatus(id, target string) *gate.Instance
	OpenDetails(ctx context.Context, id string) (string, error)
	ViewRemote(id string) func(context.Context) error
	FinishView(id string, remoteErr error) (string, error)
	Patch(ctx context.Context, id string, fields map[string]string) error

	SummaryLine() string
}
