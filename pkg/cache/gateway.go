package cache

import (
	"context"
	"errors"

	"github.com/douanani/rihladz-admin/pkg/liststore"
)

// Gateway decorates a collection gateway with snapshot handling: every
// successful list is written through to the snapshot store, and in
// offline mode lists are served from the last snapshot while mutations
// are refused.
type Gateway[T any] struct {
	inner   liststore.Gateway[T]
	snaps   *Snapshots
	key     string
	offline bool
}

// ErrOffline is returned for any mutation attempted in offline mode.
var ErrOffline = errors.New("cache: offline, mutations disabled")

// Wrap decorates inner with write-through snapshots under key.
func Wrap[T any](inner liststore.Gateway[T], snaps *Snapshots, key string, offline bool) *Gateway[T] {
	return &Gateway[T]{inner: inner, snaps: snaps, key: key, offline: offline}
}

// List fetches the collection, or the last snapshot in offline mode.
func (g *Gateway[T]) List(ctx context.Context) ([]T, error) {
	if g.offline {
		var items []T
		if err := g.snaps.Load(g.key, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	items, err := g.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if g.snaps != nil {
		// Best effort; a failed snapshot write never fails the fetch.
		_ = g.snaps.Save(g.key, items)
	}
	return items, nil
}

// Create delegates to the wrapped gateway.
func (g *Gateway[T]) Create(ctx context.Context, fields map[string]string) (T, error) {
	if g.offline {
		var zero T
		return zero, ErrOffline
	}
	return g.inner.Create(ctx, fields)
}

// Update delegates to the wrapped gateway.
func (g *Gateway[T]) Update(ctx context.Context, id string, fields map[string]string) error {
	if g.offline {
		return ErrOffline
	}
	return g.inner.Update(ctx, id, fields)
}

// Delete delegates to the wrapped gateway.
func (g *Gateway[T]) Delete(ctx context.Context, id string) error {
	if g.offline {
		return ErrOffline
	}
	return g.inner.Delete(ctx, id)
}

// DeleteMany delegates to the wrapped gateway.
func (g *Gateway[T]) DeleteMany(ctx context.Context, ids []string) error {
	if g.offline {
		return ErrOffline
	}
	return g.inner.DeleteMany(ctx, ids)
}

// SetStatus delegates to the wrapped gateway.
func (g *Gateway[T]) SetStatus(ctx context.Context, id, status string) error {
	if g.offline {
		return ErrOffline
	}
	return g.inner.SetStatus(ctx, id, status)
}
