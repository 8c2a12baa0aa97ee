package workflow

import (
	"testing"

	"github.com/douanani/rihladz-admin/pkg/entity"
	"github.com/douanani/rihladz-admin/pkg/status"
)

func reports() []entity.Report {
	return []entity.Report{
		{ID: "r-1", Reporter: "Joanna Reyes", TargetName: "Casbah Tours", Status: status.Pending},
		{ID: "r-2", Reporter: "Amine Bouzid", TargetName: "John Carter", Status: status.Pending},
		{ID: "r-3", Reporter: "Lena Haddad", TargetName: "Sahara Trails", Status: status.Reviewed},
		{ID: "r-4", Reporter: "Marco Ferraro", TargetName: "Desert Treks", Status: status.Ignored},
	}
}

func TestTallyOf(t *testing.T) {
	got := TallyOf(reports())
	want := Tally{Pending: 2, Reviewed: 1, Ignored: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got.Total() != 4 {
		t.Fatalf("expected total 4, got %d", got.Total())
	}
}

func TestTallyRecomputedAfterTransition(t *testing.T) {
	rs := reports()
	before := TallyOf(rs)

	updated, err := Transition(rs[0], status.Reviewed)
	if err != nil {
		t.Fatalf("expected transition to succeed, got %v", err)
	}
	rs[0] = updated

	after := TallyOf(rs)
	if after.Pending != before.Pending-1 {
		t.Fatalf("expected pending to drop by one, got %d -> %d", before.Pending, after.Pending)
	}
	if after.Reviewed != before.Reviewed+1 {
		t.Fatalf("expected reviewed to rise by one, got %d -> %d", before.Reviewed, after.Reviewed)
	}
	if after.Total() != before.Total() {
		t.Fatalf("expected total to stay %d, got %d", before.Total(), after.Total())
	}
}

func TestTransitionRejectsSameState(t *testing.T) {
	r := entity.Report{ID: "r-1", Status: status.Reviewed}

	if _, err := Transition(r, status.Reviewed); err == nil {
		t.Fatal("expected a same-state transition to be rejected")
	}

	// Reopening is allowed.
	back, err := Transition(r, status.Pending)
	if err != nil {
		t.Fatalf("expected reopening to be allowed, got %v", err)
	}
	if back.Status != status.Pending {
		t.Fatalf("expected pending, got %s", back.Status)
	}
}

func TestTransitionLeavesInputOnError(t *testing.T) {
	r := entity.Report{ID: "r-1", Status: status.Pending}
	got, err := Transition(r, status.Report("resolved"))
	if err == nil {
		t.Fatal("expected an unknown target to be rejected")
	}
	if got.Status != status.Pending {
		t.Fatalf("expected status unchanged on error, got %s", got.Status)
	}
}

func TestValidateTransition(t *testing.T) {
	if err := ValidateTransition(status.Pending, "reviewed"); err != nil {
		t.Fatalf("expected pending -> reviewed to validate, got %v", err)
	}
	if err := ValidateTransition(status.Pending, "resolved"); err == nil {
		t.Fatal("expected an unknown wire status to be rejected")
	}
	if err := ValidateTransition(status.Ignored, "ignored"); err == nil {
		t.Fatal("expected a same-state wire transition to be rejected")
	}
}
