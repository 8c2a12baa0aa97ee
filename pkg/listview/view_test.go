package listview

import (
	"fmt"
	"reflect"
	"testing"
)

type tourist struct {
	id      string
	name    string
	email   string
	country string
}

func (t tourist) EntityID() string { return t.id }

func (t tourist) Field(name string) string {
	switch name {
	case "fullName":
		return t.name
	case "email":
		return t.email
	case "country":
		return t.country
	}
	return ""
}

var matchFields = []string{"fullName", "email", "country"}

func roster() []tourist {
	return []tourist{
		{id: "t-1", name: "John Carter", email: "john@example.com", country: "United States"},
		{id: "t-2", name: "Maria Lopez", email: "maria@example.com", country: "Spain"},
		{id: "t-3", name: "Joanna Reyes", email: "reyes@example.com", country: "Spain"},
		{id: "t-4", name: "Amine Bouzid", email: "amine@example.com", country: "Algeria"},
	}
}

func TestFilterMatchesAnyFieldCaseInsensitive(t *testing.T) {
	got := FilterIDs(roster(), "jo", matchFields)
	want := []string{"t-1", "t-3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// Match via a non-name field.
	got = FilterIDs(roster(), "ALGERIA", matchFields)
	if !reflect.DeepEqual(got, []string{"t-4"}) {
		t.Fatalf("expected [t-4], got %v", got)
	}
}

func TestFilterEmptyQueryMatchesEverything(t *testing.T) {
	for _, q := range []string{"", "   "} {
		if got := len(Filter(roster(), q, matchFields)); got != 4 {
			t.Fatalf("expected 4 records for query %q, got %d", q, got)
		}
	}
}

func TestFilterNoMatches(t *testing.T) {
	if got := len(Filter(roster(), "zzz", matchFields)); got != 0 {
		t.Fatalf("expected no matches, got %d", got)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := FilterIDs(roster(), "spain", matchFields)
	want := []string{"t-2", "t-3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected stable order %v, got %v", want, got)
	}
}

func TestVisiblePageSlices(t *testing.T) {
	items := make([]tourist, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, tourist{id: fmt.Sprintf("t-%d", i), name: fmt.Sprintf("Tourist %d", i)})
	}

	page := VisiblePage(items, "", 1, 10, matchFields)
	if page.TotalFiltered != 12 {
		t.Fatalf("expected 12 filtered, got %d", page.TotalFiltered)
	}
	if len(page.Rows) != 2 {
		t.Fatalf("expected 2 rows on the last page, got %d", len(page.Rows))
	}
	if page.Rows[0].EntityID() != "t-10" {
		t.Fatalf("expected page to start at t-10, got %s", page.Rows[0].EntityID())
	}
}

func TestVisiblePageClampsAfterShrink(t *testing.T) {
	// 12 records put the caller on page 1; dropping below 11 must pull
	// the window back to page 0 rather than render an empty page.
	items := make([]tourist, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, tourist{id: fmt.Sprintf("t-%d", i), name: fmt.Sprintf("Tourist %d", i)})
	}

	page := VisiblePage(items, "", 1, 10, matchFields)
	if len(page.Rows) != 10 {
		t.Fatalf("expected the full first page, got %d rows", len(page.Rows))
	}
	if page.Rows[0].EntityID() != "t-0" {
		t.Fatalf("expected clamped page to start at t-0, got %s", page.Rows[0].EntityID())
	}
}

func TestVisiblePageZeroSizeShowsEverything(t *testing.T) {
	page := VisiblePage(roster(), "", 3, 0, matchFields)
	if len(page.Rows) != 4 {
		t.Fatalf("expected all rows with page size 0, got %d", len(page.Rows))
	}
}

func TestClampPageIndex(t *testing.T) {
	tests := []struct {
		index, total, size, want int
	}{
		{0, 0, 10, 0},
		{5, 0, 10, 0},
		{-1, 20, 10, 0},
		{1, 12, 10, 1},
		{2, 12, 10, 1},
		{1, 10, 10, 0},
		{3, 25, 10, 2},
	}
	for _, tc := range tests {
		if got := ClampPageIndex(tc.index, tc.total, tc.size); got != tc.want {
			t.Fatalf("ClampPageIndex(%d, %d, %d): expected %d, got %d",
				tc.index, tc.total, tc.size, tc.want, got)
		}
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 1},
	}
	for _, tc := range tests {
		if got := PageCount(tc.total, tc.size); got != tc.want {
			t.Fatalf("PageCount(%d, %d): expected %d, got %d", tc.total, tc.size, tc.want, got)
		}
	}
}
