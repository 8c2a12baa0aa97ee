// Package gate implements the confirm-before-destructive-action
// protocol shared by every screen: a proposed action sits in Confirming
// until the user decides, executes at most once, and reports its
// outcome to the notification feed. Duplicate proposals targeting a
// record that is already confirming or executing are ignored.
package gate

import (
	"context"
	"fmt"
)

// Phase is the lifecycle state of one gated action.
type Phase int

const (
	Idle Phase = iota
	Confirming
	Executing
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Confirming:
		return "confirming"
	case Executing:
		return "executing"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Action executes the confirmed mutation.
type Action func(ctx context.Context) error

// Notifier receives the outcome of gated actions.
type Notifier interface {
	Success(text string)
	Error(text string)
}

// Request describes a destructive action awaiting confirmation.
type Request struct {
	// Prompt is shown before execution, e.g. "Delete 3 agencies?".
	Prompt string
	// Success is reported when the action completes.
	Success string
	// IDs are the targeted record identifiers; they stay locked until
	// the instance resolves.
	IDs []string
	// Action runs after the user confirms. It must only perform the
	// remote call, so Execute can run it off the event loop.
	Action Action
	// Apply installs the local result after Action succeeds. It runs
	// during Resolve, on the goroutine that owns the shared state.
	Apply func()
}

// Gate tracks which record identifiers currently have an action in
// flight. Instances for unrelated records proceed independently.
type Gate struct {
	notifier Notifier
	busy     map[string]struct{}
}

// New builds a gate reporting to the given notifier.
func New(notifier Notifier) *Gate {
	return &Gate{notifier: notifier, busy: make(map[string]struct{})}
}

// Propose opens a confirmation for the request. It returns nil when any
// targeted id is already confirming or executing, which silently drops
// the duplicate trigger.
func (g *Gate) Propose(req Request) *Instance {
	if len(req.IDs) == 0 || req.Action == nil {
		return nil
	}
	for _, id := range req.IDs {
		if _, taken := g.busy[id]; taken {
			return nil
		}
	}
	for _, id := range req.IDs {
		g.busy[id] = struct{}{}
	}
	return &Instance{gate: g, req: req, phase: Confirming}
}

// Busy reports whether the id has an unresolved instance.
func (g *Gate) Busy(id string) bool {
	_, taken := g.busy[id]
	return taken
}

func (g *Gate) release(ids []string) {
	for _, id := range ids {
		delete(g.busy, id)
	}
}

// Instance is one confirm-execute-report interaction.
type Instance struct {
	gate  *Gate
	req   Request
	phase Phase
	err   error
}

// Phase returns the instance's lifecycle state.
func (i *Instance) Phase() Phase { return i.phase }

// Prompt returns the confirmation text.
func (i *Instance) Prompt() string { return i.req.Prompt }

// IDs returns the targeted identifiers.
func (i *Instance) IDs() []string { return i.req.IDs }

// Err returns the execution error after a Failed resolution.
func (i *Instance) Err() error { return i.err }

// Decline abandons the action with no side effect.
func (i *Instance) Decline() {
	if i.phase != Confirming {
		return
	}
	i.phase = Idle
	i.gate.release(i.req.IDs)
}

// Outcome carries the result of an executed action back to Resolve.
type Outcome struct {
	err error
}

// Err returns the remote call's error.
func (o Outcome) Err() error { return o.err }

// Execute runs the remote half of the action. It touches no shared
// state, so an event loop may run it in a background command; the
// outcome must then be passed to Resolve on the owning goroutine.
func (i *Instance) Execute(ctx context.Context) Outcome {
	if i.phase != Confirming {
		return Outcome{err: fmt.Errorf("gate: confirm in phase %s", i.phase)}
	}
	i.phase = Executing
	return Outcome{err: i.req.Action(ctx)}
}

// Resolve applies an execute outcome: the local patch, the id release
// and the notification. It must run on the goroutine that owns the
// store and the feed.
func (i *Instance) Resolve(o Outcome) error {
	if i.phase != Executing {
		return o.err
	}
	i.gate.release(i.req.IDs)
	if o.err != nil {
		i.phase = Failed
		i.err = o.err
		if i.gate.notifier != nil {
			i.gate.notifier.Error(o.err.Error())
		}
		return o.err
	}
	if i.req.Apply != nil {
		i.req.Apply()
	}
	i.phase = Succeeded
	if i.gate.notifier != nil && i.req.Success != "" {
		i.gate.notifier.Success(i.req.Success)
	}
	return nil
}

// Confirm executes and resolves in one step, for callers without an
// event loop. The underlying store contracts guarantee the collection
// is untouched on failure.
func (i *Instance) Confirm(ctx context.Context) error {
	if i.phase != Confirming {
		return fmt.Errorf("gate: confirm in phase %s", i.phase)
	}
	return i.Resolve(i.Execute(ctx))
}
