// Package liststore holds the authoritative in-memory collection behind
// a data-grid screen. The store is the only component allowed to mutate
// the collection; every mutation goes through the remote gateway first
// and is applied locally only on success, without a re-fetch. Derived
// counts are never stored; they are computed by scanning the current
// collection so they cannot drift.
package liststore

import (
	"context"
	"errors"
)

// Gateway is the remote surface the store persists through.
type Gateway[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, fields map[string]string) (T, error)
	Update(ctx context.Context, id string, fields map[string]string) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	SetStatus(ctx context.Context, id, status string) error
}

// Record is the minimal contract the store needs from an entity kind.
type Record interface {
	EntityID() string
}

// Store owns the collection for one entity kind.
type Store[T Record] struct {
	gateway Gateway[T]
	merge   func(T, map[string]string) T

	items   []T
	loading bool
	loadErr error
}

// New builds a store over a gateway. merge folds form fields (including
// the "status" key) into a record and is required for UpdateStatus and
// Patch.
func New[T Record](gateway Gateway[T], merge func(T, map[string]string) T) *Store[T] {
	return &Store[T]{gateway: gateway, merge: merge}
}

// Load replaces the collection with the gateway's current snapshot. On
// failure the prior collection is left untouched and the error is kept
// for display until the next successful load.
func (s *Store[T]) Load(ctx context.Context) error {
	s.BeginLoad()
	return s.FinishLoad(s.Fetch(ctx))
}

// Fetch runs the gateway snapshot call without touching the
// collection. It is safe to call off the event loop; pair it with
// BeginLoad and FinishLoad on the goroutine that owns the store.
func (s *Store[T]) Fetch(ctx context.Context) ([]T, error) {
	return s.gateway.List(ctx)
}

// BeginLoad marks the store as loading. Split out so event-loop front
// ends can run the fetch in a command and apply the result later.
func (s *Store[T]) BeginLoad() {
	s.loading = true
}

// FinishLoad applies the outcome of a fetch started with BeginLoad.
func (s *Store[T]) FinishLoad(items []T, err error) error {
	s.loading = false
	if err != nil {
		s.loadErr = err
		return err
	}
	s.items = dedupe(items)
	s.loadErr = nil
	return nil
}

// UseSnapshot seeds the collection without a gateway call, used for
// offline browsing of a cached fetch.
func (s *Store[T]) UseSnapshot(items []T) {
	s.items = dedupe(items)
	s.loadErr = nil
}

// Remove deletes a single record remotely, then drops it locally.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	if _, ok := s.Find(id); !ok {
		return errors.New("liststore: record not found")
	}
	if err := s.RemoveRemote(ctx, id); err != nil {
		return err
	}
	s.ApplyRemove(id)
	return nil
}

// RemoveMany deletes a set of records with one bulk call. The call is
// all-or-nothing from the client's point of view: on failure no record
// is dropped.
func (s *Store[T]) RemoveMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.RemoveManyRemote(ctx, ids); err != nil {
		return err
	}
	s.ApplyRemove(ids...)
	return nil
}

// UpdateStatus changes a record's status remotely, then patches the
// field in place, preserving every other field and the record's
// position in the collection.
func (s *Store[T]) UpdateStatus(ctx context.Context, id, status string) error {
	if s.indexOf(id) < 0 {
		return errors.New("liststore: record not found")
	}
	if err := s.StatusRemote(ctx, id, status); err != nil {
		return err
	}
	s.ApplyStatus(id, status)
	return nil
}

// RemoveRemote issues the gateway delete without touching the
// collection. The remote half of a mutation is safe off the event
// loop; the Apply half must run on the goroutine that owns the store.
func (s *Store[T]) RemoveRemote(ctx context.Context, id string) error {
	return s.gateway.Delete(ctx, id)
}

// RemoveManyRemote issues the gateway bulk delete without touching the
// collection.
func (s *Store[T]) RemoveManyRemote(ctx context.Context, ids []string) error {
	return s.gateway.DeleteMany(ctx, ids)
}

// StatusRemote issues the gateway status change without touching the
// collection.
func (s *Store[T]) StatusRemote(ctx context.Context, id, status string) error {
	return s.gateway.SetStatus(ctx, id, status)
}

// ApplyRemove drops records locally after a successful remote delete.
func (s *Store[T]) ApplyRemove(ids ...string) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	s.drop(set)
}

// ApplyStatus patches a record's status in place after a successful
// remote change. Unknown identifiers are ignored.
func (s *Store[T]) ApplyStatus(id, status string) {
	if idx := s.indexOf(id); idx >= 0 {
		s.items[idx] = s.merge(s.items[idx], map[string]string{"status": status})
	}
}

// Patch is the create/edit upsert: an empty id creates the record and
// appends the server's copy; otherwise the fields are merged into the
// existing record in place.
func (s *Store[T]) Patch(ctx context.Context, id string, fields map[string]string) error {
	if id == "" {
		created, err := s.gateway.Create(ctx, fields)
		if err != nil {
			return err
		}
		if idx := s.indexOf(created.EntityID()); idx >= 0 {
			s.items[idx] = created
			return nil
		}
		s.items = append(s.items, created)
		return nil
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return errors.New("liststore: record not found")
	}
	if err := s.gateway.Update(ctx, id, fields); err != nil {
		return err
	}
	s.items[idx] = s.merge(s.items[idx], fields)
	return nil
}

// Items returns the collection in its stable order.
func (s *Store[T]) Items() []T {
	return s.items
}

// Len returns the collection size.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Find returns the record with the given identifier.
func (s *Store[T]) Find(id string) (T, bool) {
	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], true
	}
	var zero T
	return zero, false
}

// Replace swaps a single record in place, keyed by its identifier.
func (s *Store[T]) Replace(item T) bool {
	if idx := s.indexOf(item.EntityID()); idx >= 0 {
		s.items[idx] = item
		return true
	}
	return false
}

// Loading reports whether a load is in flight.
func (s *Store[T]) Loading() bool {
	return s.loading
}

// LoadErr returns the persistent error from the last failed load, or
// nil after a successful one.
func (s *Store[T]) LoadErr() error {
	return s.loadErr
}

// CountWhere scans the collection and counts matching records. This is
// the only counting primitive; no tally is ever cached.
func (s *Store[T]) CountWhere(pred func(T) bool) int {
	n := 0
	for _, item := range s.items {
		if pred(item) {
			n++
		}
	}
	return n
}

func (s *Store[T]) indexOf(id string) int {
	for i, item := range s.items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}

func (s *Store[T]) drop(ids map[string]struct{}) {
	kept := s.items[:0]
	for _, item := range s.items {
		if _, gone := ids[item.EntityID()]; !gone {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// dedupe keeps the first record for each identifier, preserving order.
func dedupe[T Record](items []T) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		id := item.EntityID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, item)
	}
	return out
}
