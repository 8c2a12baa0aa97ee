package remove

import (
	"context"
	"strings"
	"testing"

	"github.com/douanani/rihladz-admin/pkg/entity"
	"github.com/douanani/rihladz-admin/pkg/liststore"
	"github.com/douanani/rihladz-admin/pkg/notify"
	"github.com/douanani/rihladz-admin/pkg/screen"
)

type fakeGateway struct {
	items   []entity.Category
	deletes []string
}

func (g *fakeGateway) List(ctx context.Context) ([]entity.Category, error) { return g.items, nil }

func (g *fakeGateway) Create(ctx context.Context, fields map[string]string) (entity.Category, error) {
	return entity.Category{}, nil
}

func (g *fakeGateway) Update(ctx context.Context, id string, fields map[string]string) error {
	return nil
}

func (g *fakeGateway) Delete(ctx context.Context, id string) error {
	g.deletes = append(g.deletes, id)
	return nil
}

func (g *fakeGateway) DeleteMany(ctx context.Context, ids []string) error {
	g.deletes = append(g.deletes, ids...)
	return nil
}

func (g *fakeGateway) SetStatus(ctx context.Context, id, status string) error { return nil }

func table(gw *fakeGateway) screen.Table {
	cfg := screen.Config{
		Name:        "categories",
		Singular:    "category",
		LabelField:  "name",
		MatchFields: []string{"name"},
		Columns:     []screen.Column{{Title: "Name", Field: "name"}},
		PageSizes:   []int{10},
	}
	store := liststore.New[entity.Category](gw, entity.MergeCategory)
	return screen.NewController(cfg, store, notify.NewFeed(10))
}

func TestDoDeletesWhenConfirmed(t *testing.T) {
	gw := &fakeGateway{items: []entity.Category{{ID: "cat-1", Name: "Desert Treks"}}}

	r := Remove{
		Table: table(gw),
		IDs:   []string{"cat-1"},
		In:    strings.NewReader("y\n"),
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("expected the remove to succeed, got %v", err)
	}
	if len(gw.deletes) != 1 || gw.deletes[0] != "cat-1" {
		t.Fatalf("expected one delete for cat-1, got %v", gw.deletes)
	}
}

func TestDoAbortsWithoutConfirmation(t *testing.T) {
	gw := &fakeGateway{items: []entity.Category{{ID: "cat-1", Name: "Desert Treks"}}}

	for _, answer := range []string{"n\n", "\n", "nope\n"} {
		r := Remove{
			Table: table(gw),
			IDs:   []string{"cat-1"},
			In:    strings.NewReader(answer),
		}
		if err := r.Do(context.Background()); err != nil {
			t.Fatalf("expected a declined remove to return nil, got %v", err)
		}
	}
	if len(gw.deletes) != 0 {
		t.Fatalf("expected no deletes, got %v", gw.deletes)
	}
}

func TestDoSkipsPromptWithYes(t *testing.T) {
	gw := &fakeGateway{items: []entity.Category{
		{ID: "cat-1", Name: "Desert Treks"},
		{ID: "cat-2", Name: "Coastal Escapes"},
	}}

	r := Remove{
		Table: table(gw),
		IDs:   []string{"cat-1", "cat-2"},
		Yes:   true,
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("expected the bulk remove to succeed, got %v", err)
	}
	if len(gw.deletes) != 2 {
		t.Fatalf("expected both ids deleted, got %v", gw.deletes)
	}
}

func TestDoRequiresIDs(t *testing.T) {
	r := Remove{Table: table(&fakeGateway{})}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("expected an error without ids")
	}
}
