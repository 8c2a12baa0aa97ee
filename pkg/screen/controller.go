package screen

import (
	"context"
	"fmt"
	"strings"

	"github.com/douanani/rihladz-admin/pkg/entity"
	"github.com/douanani/rihladz-admin/pkg/gate"
	"github.com/douanani/rihladz-admin/pkg/liststore"
	"github.com/douanani/rihladz-admin/pkg/listview"
	"github.com/douanani/rihladz-admin/pkg/notify"
	"github.com/douanani/rihladz-admin/pkg/selection"
)

// Controller drives one data-grid screen: it owns the query and page
// window, keeps the selection reconciled against what filtering shows,
// and wraps every destructive mutation in the gate.
type Controller[T entity.Record] struct {
	cfg     Config
	store   *liststore.Store[T]
	tracker *selection.Tracker
	gate    *gate.Gate
	feed    *notify.Feed

	query     string
	pageIndex int
	pageSize  int

	details   func(T) string
	summarize func([]T) string
}

// NewController builds the controller for a screen.
func NewController[T entity.Record](cfg Config, store *liststore.Store[T], feed *notify.Feed) *Controller[T] {
	pageSize := 10
	if len(cfg.PageSizes) > 0 {
		pageSize = cfg.PageSizes[0]
	}
	return &Controller[T]{
		cfg:      cfg,
		store:    store,
		tracker:  selection.NewTracker(),
		gate:     gate.New(feed),
		feed:     feed,
		pageSize: pageSize,
	}
}

// SetDetailRenderer overrides the default details text for a record.
func (c *Controller[T]) SetDetailRenderer(fn func(T) string) {
	c.details = fn
}

// SetSummarizer overrides the default summary line.
func (c *Controller[T]) SetSummarizer(fn func([]T) string) {
	c.summarize = fn
}

// Name implements Table.
func (c *Controller[T]) Name() string { return c.cfg.Name }

// Singular implements Table.
func (c *Controller[T]) Singular() string { return c.cfg.Singular }

// Columns implements Table.
func (c *Controller[T]) Columns() []Column { return c.cfg.Columns }

// PageSizes implements Table.
func (c *Controller[T]) PageSizes() []int { return c.cfg.PageSizes }

// StatusTargets implements Table.
func (c *Controller[T]) StatusTargets() []string { return c.cfg.StatusTargets }

// CanRefresh implements Table.
func (c *Controller[T]) CanRefresh() bool { return c.cfg.CanRefresh }

// Load replaces the collection with a fresh snapshot. Failures land in
// the notification feed and stay readable via LoadErr.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.BeginLoad()
	return c.Fetch(ctx)()
}

// BeginLoad flags the screen as loading before a background fetch.
func (c *Controller[T]) BeginLoad() {
	c.store.BeginLoad()
}

// Fetch runs the gateway snapshot call and returns an apply closure
// that installs the outcome. Fetch itself touches no shared state, so
// an event loop may run it in a background command; the closure must
// run on the goroutine that owns the screen.
func (c *Controller[T]) Fetch(ctx context.Context) func() error {
	items, err := c.store.Fetch(ctx)
	return func() error {
		if err := c.store.FinishLoad(items, err); err != nil {
			c.feed.Error(err.Error())
			return err
		}
		c.reconcile()
		return nil
	}
}

// Loading implements Table.
func (c *Controller[T]) Loading() bool { return c.store.Loading() }

// LoadErr implements Table.
func (c *Controller[T]) LoadErr() error { return c.store.LoadErr() }

// Items returns the underlying collection.
func (c *Controller[T]) Items() []T { return c.store.Items() }

// Store exposes the underlying store for form-driven patches.
func (c *Controller[T]) Store() *liststore.Store[T] { return c.store }

// Query implements Table.
func (c *Controller[T]) Query() string { return c.query }

// SetQuery installs a new free-text filter. Changing the query resets
// the page window and shrinks the selection to what remains visible.
func (c *Controller[T]) SetQuery(q string) {
	if q == c.query {
		return
	}
	c.query = q
	c.pageIndex = 0
	c.reconcile()
}

// PageIndex returns the current page, re-clamped against the filtered
// count so callers can never observe a stranded window.
func (c *Controller[T]) PageIndex() int {
	return listview.ClampPageIndex(c.pageIndex, c.TotalFiltered(), c.pageSize)
}

// PageSize implements Table.
func (c *Controller[T]) PageSize() int { return c.pageSize }

// SetPageSize changes the rows-per-page value and resets the window.
func (c *Controller[T]) SetPageSize(n int) {
	if n <= 0 || n == c.pageSize {
		return
	}
	c.pageSize = n
	c.pageIndex = 0
}

// NextPage implements Table.
func (c *Controller[T]) NextPage() {
	c.pageIndex = listview.ClampPageIndex(c.PageIndex()+1, c.TotalFiltered(), c.pageSize)
}

// PrevPage implements Table.
func (c *Controller[T]) PrevPage() {
	c.pageIndex = listview.ClampPageIndex(c.PageIndex()-1, c.TotalFiltered(), c.pageSize)
}

// PageCount implements Table.
func (c *Controller[T]) PageCount() int {
	return listview.PageCount(c.TotalFiltered(), c.pageSize)
}

// TotalFiltered implements Table.
func (c *Controller[T]) TotalFiltered() int {
	return len(listview.Filter(c.store.Items(), c.query, c.cfg.MatchFields))
}

// Total implements Table.
func (c *Controller[T]) Total() int { return c.store.Len() }

// Page returns the visible window of the filtered collection.
func (c *Controller[T]) Page() listview.Page[T] {
	return listview.VisiblePage(c.store.Items(), c.query, c.pageIndex, c.pageSize, c.cfg.MatchFields)
}

// Rows projects the visible page through the configured columns.
func (c *Controller[T]) Rows() [][]string {
	page := c.Page()
	rows := make([][]string, 0, len(page.Rows))
	for _, item := range page.Rows {
		cells := make([]string, 0, len(c.cfg.Columns))
		for _, col := range c.cfg.Columns {
			cells = append(cells, item.Field(col.Field))
		}
		rows = append(rows, cells)
	}
	return rows
}

// RowIDs implements Table.
func (c *Controller[T]) RowIDs() []string {
	return c.Page().IDs()
}

// visibleIDs is the selection scope: every identifier the active filter
// shows, across all pages.
func (c *Controller[T]) visibleIDs() []string {
	return listview.FilterIDs(c.store.Items(), c.query, c.cfg.MatchFields)
}

func (c *Controller[T]) reconcile() {
	c.tracker.Reconcile(c.visibleIDs())
}

// Toggle implements Table.
func (c *Controller[T]) Toggle(id string) {
	c.tracker.Toggle(id)
	c.reconcile()
}

// ToggleAll selects every filtered row, or clears the selection when
// everything is already selected.
func (c *Controller[T]) ToggleAll() {
	c.tracker.ToggleAll(c.visibleIDs())
}

// Selected implements Table.
func (c *Controller[T]) Selected(id string) bool { return c.tracker.Has(id) }

// SelectedIDs implements Table.
func (c *Controller[T]) SelectedIDs() []string { return c.tracker.IDs() }

// SelectionCount implements Table.
func (c *Controller[T]) SelectionCount() int { return c.tracker.Len() }

// AllSelected implements Table.
func (c *Controller[T]) AllSelected() bool {
	return c.tracker.AllSelected(c.visibleIDs())
}

// Indeterminate implements Table.
func (c *Controller[T]) Indeterminate() bool {
	return c.tracker.Indeterminate(c.visibleIDs())
}

// Delete proposes removing one record. The returned instance is nil
// when the record is unknown or already gated.
func (c *Controller[T]) Delete(id string) *gate.Instance {
	item, ok := c.store.Find(id)
	if !ok {
		c.feed.Error(fmt.Sprintf("%s %s not found", c.cfg.Singular, id))
		return nil
	}
	label := c.labelOf(item)
	return c.gate.Propose(gate.Request{
		Prompt:  fmt.Sprintf("Delete %s %q?", c.cfg.Singular, label),
		Success: fmt.Sprintf("Deleted %s %q", c.cfg.Singular, label),
		IDs:     []string{id},
		Action: func(ctx context.Context) error {
			return c.store.RemoveRemote(ctx, id)
		},
		Apply: func() {
			c.store.ApplyRemove(id)
			c.reconcile()
		},
	})
}

// DeleteMany proposes removing an explicit id set in one bulk call.
func (c *Controller[T]) DeleteMany(ids []string) *gate.Instance {
	if len(ids) == 0 {
		return nil
	}
	for _, id := range ids {
		if _, ok := c.store.Find(id); !ok {
			c.feed.Error(fmt.Sprintf("%s %s not found", c.cfg.Singular, id))
			return nil
		}
	}
	count := len(ids)
	return c.gate.Propose(gate.Request{
		Prompt:  fmt.Sprintf("Delete %d %s?", count, c.pluralize(count)),
		Success: fmt.Sprintf("Deleted %d %s", count, c.pluralize(count)),
		IDs:     append([]string(nil), ids...),
		Action: func(ctx context.Context) error {
			return c.store.RemoveManyRemote(ctx, ids)
		},
		Apply: func() {
			c.store.ApplyRemove(ids...)
			c.reconcile()
		},
	})
}

// DeleteSelected proposes removing the current selection.
func (c *Controller[T]) DeleteSelected() *gate.Instance {
	return c.DeleteMany(c.tracker.IDs())
}

// ChangeStatus proposes a status transition for one record, validating
// it against the screen's workflow before any confirmation is shown.
func (c *Controller[T]) ChangeStatus(id, target string) *gate.Instance {
	if c.cfg.ValidateStatus == nil {
		return nil
	}
	item, ok := c.store.Find(id)
	if !ok {
		c.feed.Error(fmt.Sprintf("%s %s not found", c.cfg.Singular, id))
		return nil
	}
	if err := c.cfg.ValidateStatus(item.Field("status"), target); err != nil {
		c.feed.Error(err.Error())
		return nil
	}
	label := c.labelOf(item)
	return c.gate.Propose(gate.Request{
		Prompt:  fmt.Sprintf("Mark %s %q as %s?", c.cfg.Singular, label, target),
		Success: fmt.Sprintf("%s %q marked %s", capitalize(c.cfg.Singular), label, target),
		IDs:     []string{id},
		Action: func(ctx context.Context) error {
			return c.store.StatusRemote(ctx, id, target)
		},
		Apply: func() {
			c.store.ApplyStatus(id, target)
		},
	})
}

// Patch is the create/edit entry point. An empty id creates a record;
// otherwise fields are merged into the existing one. Required fields
// are checked before any gateway call, so a ValidationError never
// touches the collection.
func (c *Controller[T]) Patch(ctx context.Context, id string, fields map[string]string) error {
	for _, name := range c.cfg.RequiredFields {
		value, given := fields[name]
		if id == "" && !given {
			return &ValidationError{Field: name}
		}
		if given && strings.TrimSpace(value) == "" {
			return &ValidationError{Field: name}
		}
	}
	if err := c.store.Patch(ctx, id, fields); err != nil {
		c.feed.Error(err.Error())
		return err
	}
	c.reconcile()
	return nil
}

// OpenDetails renders a record's details. For screens configured with
// MarksReadOnView, the first open flips the record to read; a failed
// mark-read call is reported but never hides the details.
func (c *Controller[T]) OpenDetails(ctx context.Context, id string) (string, error) {
	if _, ok := c.store.Find(id); !ok {
		return "", fmt.Errorf("screen: %s %s not found", c.cfg.Singular, id)
	}
	var err error
	if remote := c.ViewRemote(id); remote != nil {
		err = remote(ctx)
	}
	return c.FinishView(id, err)
}

// ViewRemote returns the gateway call a details open owes before the
// record is shown (the mark-read side effect), or nil when the view
// has none. The returned call touches no shared state.
func (c *Controller[T]) ViewRemote(id string) func(context.Context) error {
	if !c.cfg.MarksReadOnView {
		return nil
	}
	item, ok := c.store.Find(id)
	if !ok || item.Field("status") != "unread" {
		return nil
	}
	return func(ctx context.Context) error {
		return c.store.StatusRemote(ctx, id, "read")
	}
}

// FinishView applies a ViewRemote outcome and renders the record. A
// failed mark-read call is reported but never hides the details, and
// the record stays unread locally.
func (c *Controller[T]) FinishView(id string, remoteErr error) (string, error) {
	item, ok := c.store.Find(id)
	if !ok {
		return "", fmt.Errorf("screen: %s %s not found", c.cfg.Singular, id)
	}
	if remoteErr != nil {
		c.feed.Error(remoteErr.Error())
	} else if c.cfg.MarksReadOnView && item.Field("status") == "unread" {
		c.store.ApplyStatus(id, "read")
		if refreshed, ok := c.store.Find(id); ok {
			item = refreshed
		}
	}
	if c.details != nil {
		return c.details(item), nil
	}
	return c.defaultDetails(item), nil
}

// SummaryLine implements Table.
func (c *Controller[T]) SummaryLine() string {
	if c.summarize != nil {
		return c.summarize(c.store.Items())
	}
	total := c.store.Len()
	return fmt.Sprintf("%d %s", total, c.pluralize(total))
}

func (c *Controller[T]) defaultDetails(item T) string {
	var b strings.Builder
	for _, col := range c.cfg.Columns {
		fmt.Fprintf(&b, "%s: %s\n", col.Title, item.Field(col.Field))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *Controller[T]) labelOf(item T) string {
	if c.cfg.LabelField != "" {
		if label := item.Field(c.cfg.LabelField); label != "" {
			return label
		}
	}
	return item.EntityID()
}

func (c *Controller[T]) pluralize(count int) string {
	if count == 1 {
		return c.cfg.Singular
	}
	return c.cfg.Name
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
