// Package listview projects a collection through a free-text query and
// a page window. It keeps no state of its own; callers recompute the
// projection whenever any input changes.
package listview

import "strings"

// Record is the minimal contract the view needs from an entity kind.
type Record interface {
	EntityID() string
	Field(name string) string
}

// Page is one visible window of a filtered collection.
type Page[T Record] struct {
	Rows          []T
	TotalFiltered int
}

// IDs returns the identifiers of the rows on the page.
func (p Page[T]) IDs() []string {
	ids := make([]string, 0, len(p.Rows))
	for _, row := range p.Rows {
		ids = append(ids, row.EntityID())
	}
	return ids
}

// Filter returns the records whose configured fields contain the query
// as a case-insensitive substring. An empty query matches everything; a
// record matches when any field does.
func Filter[T Record](items []T, query string, fields []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, query, fields) {
			out = append(out, item)
		}
	}
	return out
}

// FilterIDs returns the identifiers of every record matching the query,
// across all pages.
func FilterIDs[T Record](items []T, query string, fields []string) []string {
	filtered := Filter(items, query, fields)
	ids := make([]string, 0, len(filtered))
	for _, item := range filtered {
		ids = append(ids, item.EntityID())
	}
	return ids
}

// VisiblePage filters the collection and slices out the requested page.
// pageIndex is clamped into the valid range before slicing so a shrink
// of the filtered set can never strand the caller past the end.
func VisiblePage[T Record](items []T, query string, pageIndex, pageSize int, fields []string) Page[T] {
	filtered := Filter(items, query, fields)
	total := len(filtered)
	if pageSize <= 0 {
		return Page[T]{Rows: filtered, TotalFiltered: total}
	}
	pageIndex = ClampPageIndex(pageIndex, total, pageSize)
	start := pageIndex * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Page[T]{Rows: filtered[start:end], TotalFiltered: total}
}

// ClampPageIndex bounds pageIndex to the last non-empty page:
// max(0, ceil(total/size)-1).
func ClampPageIndex(pageIndex, totalFiltered, pageSize int) int {
	if pageIndex < 0 {
		return 0
	}
	if pageSize <= 0 || totalFiltered <= 0 {
		return 0
	}
	last := (totalFiltered + pageSize - 1) / pageSize
	if last > 0 {
		last--
	}
	if pageIndex > last {
		return last
	}
	return pageIndex
}

// PageCount returns the number of pages the filtered set spans, at
// least one so pagers always have something to show.
func PageCount(totalFiltered, pageSize int) int {
	if pageSize <= 0 || totalFiltered <= 0 {
		return 1
	}
	return (totalFiltered + pageSize - 1) / pageSize
}

func matches[T Record](item T, loweredQuery string, fields []string) bool {
	for _, field := range fields {
		value := item.Field(field)
		if value == "" {
			continue
		}
		if strings.Contains(strings.ToLower(value), loweredQuery) {
			return true
		}
	}
	return false
}
