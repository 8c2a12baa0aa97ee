package screen

import (
	"fmt"
	"strings"

	"github.com/douanani/rihladz-admin/pkg/cache"
	"github.com/douanani/rihladz-admin/pkg/entity"
	"github.com/douanani/rihladz-admin/pkg/gateway"
	"github.com/douanani/rihladz-admin/pkg/liststore"
	"github.com/douanani/rihladz-admin/pkg/notify"
	"github.com/douanani/rihladz-admin/pkg/status"
	"github.com/douanani/rihladz-admin/pkg/workflow"
)

var defaultPageSizes = []int{5, 10, 25}

// Screens holds one controller per admin screen, all sharing a
// notification feed.
type Screens struct {
	Agencies   *Controller[entity.Agency]
	Tourists   *Controller[entity.Tourist]
	Messages   *Controller[entity.Message]
	Reports    *Controller[entity.Report]
	Categories *Controller[entity.Category]
	Feed       *notify.Feed
}

// Options carries the shared wiring for all screens.
type Options struct {
	Client *gateway.Client
	Snaps  *cache.Snapshots
	// Offline serves collections from the last snapshot and refuses
	// mutations.
	Offline bool
	Feed    *notify.Feed
}

// New wires the five admin screens.
func New(opts Options) *Screens {
	feed := opts.Feed
	if feed == nil {
		feed = notify.NewFeed(50)
	}
	s := &Screens{Feed: feed}

	s.Agencies = NewController(agenciesConfig(), newStore(
		gateway.NewResource[entity.Agency](opts.Client, "agencies"),
		entity.MergeAgency, opts, "agencies"), feed)

	s.Tourists = NewController(touristsConfig(), newStore(
		gateway.NewResource[entity.Tourist](opts.Client, "tourists"),
		entity.MergeTourist, opts, "tourists"), feed)

	s.Messages = NewController(messagesConfig(), newStore[entity.Message](
		gateway.NewMessageResource(opts.Client),
		entity.MergeMessage, opts, "messages"), feed)
	s.Messages.SetDetailRenderer(messageDetails)
	s.Messages.SetSummarizer(messageSummary)

	s.Reports = NewController(reportsConfig(), newStore(
		gateway.NewResource[entity.Report](opts.Client, "reports"),
		entity.MergeReport, opts, "reports"), feed)
	s.Reports.SetDetailRenderer(reportDetails)
	s.Reports.SetSummarizer(reportSummary)

	s.Categories = NewController(categoriesConfig(), newStore(
		gateway.NewResource[entity.Category](opts.Client, "categories"),
		entity.MergeCategory, opts, "categories"), feed)

	return s
}

// Tables returns the screens in display order, kind-erased.
func (s *Screens) Tables() []Table {
	return []Table{s.Agencies, s.Tourists, s.Messages, s.Reports, s.Categories}
}

// Lookup finds a screen by name.
func (s *Screens) Lookup(name string) (Table, bool) {
	for _, t := range s.Tables() {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

func newStore[T entity.Record](gw liststore.Gateway[T], merge entity.Merger[T], opts Options, key string) *liststore.Store[T] {
	if opts.Snaps != nil {
		gw = cache.Wrap(gw, opts.Snaps, key, opts.Offline)
	}
	return liststore.New(gw, merge)
}

func agenciesConfig() Config {
	return Config{
		Name:        "agencies",
		Singular:    "agency",
		LabelField:  "name",
		MatchFields: []string{"name", "email", "wilaya"},
		Columns: []Column{
			{Title: "Name", Field: "name"},
			{Title: "Email", Field: "email"},
			{Title: "Phone", Field: "phone"},
			{Title: "Wilaya", Field: "wilaya"},
		},
		PageSizes:      defaultPageSizes,
		RequiredFields: []string{"name", "email"},
	}
}

func touristsConfig() Config {
	return Config{
		Name:        "tourists",
		Singular:    "tourist",
		LabelField:  "fullName",
		MatchFields: []string{"fullName", "email", "country"},
		Columns: []Column{
			{Title: "Full name", Field: "fullName"},
			{Title: "Email", Field: "email"},
			{Title: "Phone", Field: "phone"},
			{Title: "Country", Field: "country"},
		},
		PageSizes:      defaultPageSizes,
		RequiredFields: []string{"fullName", "email"},
	}
}

func messagesConfig() Config {
	return Config{
		Name:        "messages",
		Singular:    "message",
		LabelField:  "subject",
		MatchFields: []string{"name", "email", "subject"},
		Columns: []Column{
			{Title: "Status", Field: "status"},
			{Title: "From", Field: "name"},
			{Title: "Email", Field: "email"},
			{Title: "Subject", Field: "subject"},
		},
		PageSizes:       defaultPageSizes,
		MarksReadOnView: true,
	}
}

func reportsConfig() Config {
	return Config{
		Name:        "reports",
		Singular:    "report",
		LabelField:  "targetName",
		MatchFields: []string{"reporter", "targetName", "reason", "status"},
		Columns: []Column{
			{Title: "Status", Field: "status"},
			{Title: "Reporter", Field: "reporter"},
			{Title: "Target", Field: "targetName"},
			{Title: "Reason", Field: "reason"},
		},
		PageSizes:     defaultPageSizes,
		StatusTargets: []string{string(status.Reviewed), string(status.Ignored), string(status.Pending)},
		ValidateStatus: func(current, target string) error {
			parsed, err := status.ParseReport(current)
			if err != nil {
				return err
			}
			return workflow.ValidateTransition(parsed, target)
		},
		CanRefresh: true,
	}
}

func categoriesConfig() Config {
	return Config{
		Name:        "categories",
		Singular:    "category",
		LabelField:  "name",
		MatchFields: []string{"name", "description"},
		Columns: []Column{
			{Title: "Name", Field: "name"},
			{Title: "Description", Field: "description"},
		},
		PageSizes:      defaultPageSizes,
		RequiredFields: []string{"name"},
	}
}

func messageDetails(m entity.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", m.Name, m.Email)
	fmt.Fprintf(&b, "Subject: %s\n", m.Subject)
	if !m.ReceivedAt.IsZero() {
		fmt.Fprintf(&b, "Received: %s\n", m.ReceivedAt.Format("January 2, 2006 15:04"))
	}
	fmt.Fprintf(&b, "Status: %s\n\n", m.Status)
	b.WriteString(m.Body)
	return strings.TrimRight(b.String(), "\n")
}

func messageSummary(items []entity.Message) string {
	unread := 0
	for _, m := range items {
		if m.Unread() {
			unread++
		}
	}
	return fmt.Sprintf("%d messages · %d unread", len(items), unread)
}

func reportDetails(r entity.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reporter: %s\n", r.Reporter)
	fmt.Fprintf(&b, "Target: %s (%s)\n", r.TargetName, r.TargetType)
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Filed: %s\n", r.CreatedAt.Format("January 2, 2006 15:04"))
	}
	fmt.Fprintf(&b, "Status: %s\n\n", r.Status)
	b.WriteString(r.Reason)
	return strings.TrimRight(b.String(), "\n")
}

func reportSummary(items []entity.Report) string {
	t := workflow.TallyOf(items)
	return fmt.Sprintf("%d reports · %d pending · %d reviewed · %d ignored",
		t.Total(), t.Pending, t.Reviewed, t.Ignored)
}
