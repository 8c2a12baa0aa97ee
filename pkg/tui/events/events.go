// Package events defines the cross-component Bubble Tea messages the
// console UI exchanges. Commands perform only gateway I/O; every
// message carries what Update needs to apply the result on the
// program goroutine, so no shared state is touched off the loop.
package events

import (
	"github.com/douanani/rihladz-admin/pkg/gate"
)

// LoadFinishedMsg reports a finished collection fetch. Apply installs
// the fetched snapshot and must run in Update.
type LoadFinishedMsg struct {
	Screen string
	Apply  func() error
}

// GateResolvedMsg hands an executed destructive action back to Update
// for resolution: the local patch, the id release and the
// notification all happen there.
type GateResolvedMsg struct {
	Screen   string
	Instance *gate.Instance
	Outcome  gate.Outcome
}

// DetailsMsg reports the remote half of a details open (the mark-read
// side effect, when the screen has one). Update applies the outcome
// and renders the record.
type DetailsMsg struct {
	Screen string
	ID     string
	Err    error
}
