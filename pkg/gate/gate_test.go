package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/douanani/rihladz-admin/pkg/notify"
)

func TestDeclineLeavesNoTrace(t *testing.T) {
	feed := notify.NewFeed(10)
	g := New(feed)

	ran := false
	inst := g.Propose(Request{
		Prompt: "Delete agency \"Sahara Trails\"?",
		IDs:    []string{"ag-1"},
		Action: func(ctx context.Context) error {
			ran = true
			return nil
		},
	})
	if inst == nil {
		t.Fatal("expected an instance")
	}
	if inst.Phase() != Confirming {
		t.Fatalf("expected confirming, got %s", inst.Phase())
	}

	inst.Decline()
	if inst.Phase() != Idle {
		t.Fatalf("expected idle after decline, got %s", inst.Phase())
	}
	if ran {
		t.Fatal("expected the action not to run")
	}
	if g.Busy("ag-1") {
		t.Fatal("expected the id to be released after decline")
	}
	if len(feed.Entries()) != 0 {
		t.Fatalf("expected no notifications, got %d", len(feed.Entries()))
	}
}

func TestConfirmRunsOnceAndNotifies(t *testing.T) {
	feed := notify.NewFeed(10)
	g := New(feed)

	runs := 0
	inst := g.Propose(Request{
		Prompt:  "Delete agency \"Sahara Trails\"?",
		Success: "Deleted agency \"Sahara Trails\"",
		IDs:     []string{"ag-1"},
		Action: func(ctx context.Context) error {
			runs++
			return nil
		},
	})

	if err := inst.Confirm(context.Background()); err != nil {
		t.Fatalf("expected confirm to succeed, got %v", err)
	}
	if inst.Phase() != Succeeded {
		t.Fatalf("expected succeeded, got %s", inst.Phase())
	}
	if runs != 1 {
		t.Fatalf("expected the action to run once, ran %d times", runs)
	}

	// A second confirm is refused and does not re-run the action.
	if err := inst.Confirm(context.Background()); err == nil {
		t.Fatal("expected a second confirm to fail")
	}
	if runs != 1 {
		t.Fatalf("expected no re-run, ran %d times", runs)
	}

	last, ok := feed.Last()
	if !ok || last.Level != notify.Info {
		t.Fatalf("expected a success notification, got %+v", last)
	}
	if g.Busy("ag-1") {
		t.Fatal("expected the id to be released after confirm")
	}
}

func TestConfirmFailureReportsAndReleases(t *testing.T) {
	feed := notify.NewFeed(10)
	g := New(feed)

	boom := errors.New("api error (status 500): database busy")
	inst := g.Propose(Request{
		Prompt: "Delete 3 tourists?",
		IDs:    []string{"t-1", "t-2", "t-3"},
		Action: func(ctx context.Context) error { return boom },
	})

	if err := inst.Confirm(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected the action error, got %v", err)
	}
	if inst.Phase() != Failed {
		t.Fatalf("expected failed, got %s", inst.Phase())
	}
	if inst.Err() != boom {
		t.Fatalf("expected the error to be kept, got %v", inst.Err())
	}

	last, ok := feed.Last()
	if !ok || last.Level != notify.Problem {
		t.Fatalf("expected a problem notification, got %+v", last)
	}

	// Failure releases the ids so the user can retry explicitly.
	if g.Busy("t-2") {
		t.Fatal("expected ids to be released after failure")
	}
}

func TestDuplicateProposalIgnored(t *testing.T) {
	g := New(notify.NewFeed(10))

	first := g.Propose(Request{
		Prompt: "Delete report?",
		IDs:    []string{"r-1"},
		Action: func(ctx context.Context) error { return nil },
	})
	if first == nil {
		t.Fatal("expected the first proposal to open")
	}

	// Same record is already confirming, so the duplicate is dropped.
	if dup := g.Propose(Request{
		Prompt: "Delete report?",
		IDs:    []string{"r-1"},
		Action: func(ctx context.Context) error { return nil },
	}); dup != nil {
		t.Fatal("expected the duplicate proposal to be ignored")
	}

	// Overlapping bulk proposals are dropped too.
	if dup := g.Propose(Request{
		Prompt: "Delete 2 reports?",
		IDs:    []string{"r-2", "r-1"},
		Action: func(ctx context.Context) error { return nil },
	}); dup != nil {
		t.Fatal("expected the overlapping proposal to be ignored")
	}

	// Unrelated records proceed independently.
	if other := g.Propose(Request{
		Prompt: "Delete report?",
		IDs:    []string{"r-9"},
		Action: func(ctx context.Context) error { return nil },
	}); other == nil {
		t.Fatal("expected an unrelated proposal to open")
	}

	first.Decline()
	if again := g.Propose(Request{
		Prompt: "Delete report?",
		IDs:    []string{"r-1"},
		Action: func(ctx context.Context) error { return nil },
	}); again == nil {
		t.Fatal("expected a new proposal after the first resolved")
	}
}

func TestProposeRejectsEmptyRequest(t *testing.T) {
	g := New(notify.NewFeed(10))

	if inst := g.Propose(Request{Prompt: "?", Action: func(ctx context.Context) error { return nil }}); inst != nil {
		t.Fatal("expected a proposal without ids to be refused")
	}
	if inst := g.Propose(Request{Prompt: "?", IDs: []string{"x"}}); inst != nil {
		t.Fatal("expected a proposal without an action to be refused")
	}
}

func TestExecuteResolveSplit(t *testing.T) {
	feed := notify.NewFeed(10)
	g := New(feed)

	applied := false
	inst := g.Propose(Request{
		Prompt:  "Delete agency \"Sahara Trails\"?",
		Success: "Deleted agency \"Sahara Trails\"",
		IDs:     []string{"ag-1"},
		Action:  func(ctx context.Context) error { return nil },
		Apply:   func() { applied = true },
	})

	out := inst.Execute(context.Background())
	if inst.Phase() != Executing {
		t.Fatalf("expected executing, got %s", inst.Phase())
	}
	if applied {
		t.Fatal("expected the local patch to wait for Resolve")
	}
	if len(feed.Entries()) != 0 {
		t.Fatal("expected no notification before Resolve")
	}
	if !g.Busy("ag-1") {
		t.Fatal("expected the id to stay locked until Resolve")
	}

	if err := inst.Resolve(out); err != nil {
		t.Fatalf("expected resolve to succeed, got %v", err)
	}
	if !applied {
		t.Fatal("expected the local patch to run in Resolve")
	}
	if inst.Phase() != Succeeded {
		t.Fatalf("expected succeeded, got %s", inst.Phase())
	}
	if g.Busy("ag-1") {
		t.Fatal("expected the id released after resolve")
	}
	if last, ok := feed.Last(); !ok || last.Level != notify.Info {
		t.Fatal("expected the success notification in Resolve")
	}
}

func TestResolveFailureSkipsApply(t *testing.T) {
	feed := notify.NewFeed(10)
	g := New(feed)

	boom := errors.New("api error (status 500)")
	applied := false
	inst := g.Propose(Request{
		Prompt: "Delete report?",
		IDs:    []string{"r-1"},
		Action: func(ctx context.Context) error { return boom },
		Apply:  func() { applied = true },
	})

	out := inst.Execute(context.Background())
	if err := inst.Resolve(out); !errors.Is(err, boom) {
		t.Fatalf("expected the action error, got %v", err)
	}
	if applied {
		t.Fatal("expected no local patch on failure")
	}
	if inst.Phase() != Failed {
		t.Fatalf("expected failed, got %s", inst.Phase())
	}
	if g.Busy("r-1") {
		t.Fatal("expected the id released after failure")
	}
	if last, ok := feed.Last(); !ok || last.Level != notify.Problem {
		t.Fatal("expected a problem notification")
	}
}
