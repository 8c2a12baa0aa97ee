// Package confirm renders the destructive-action prompt as a centered
// modal overlay.
package confirm

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/douanani/rihladz-admin/pkg/gate"
	"github.com/douanani/rihladz-admin/pkg/tui/theme"
)

// Model holds the pending gate instance while the user decides.
type Model struct {
	th       theme.Theme
	instance *gate.Instance
	width    int
}

// NewModel constructs an idle confirm overlay.
func NewModel(th theme.Theme) *Model {
	return &Model{th: th, width: 60}
}

// SetWidth bounds the modal width.
func (m *Model) SetWidth(w int) {
	if w > 20 {
		m.width = w
	}
}

// Show installs a pending instance. A nil instance is ignored, matching
// the gate's duplicate-trigger behavior.
func (m *Model) Show(inst *gate.Instance) {
	if inst == nil {
		return
	}
	m.instance = inst
}

// Active reports whether a prompt is awaiting a decision.
func (m *Model) Active() bool { return m.instance != nil }

// Take hands the pending instance to the caller for execution and
// clears the overlay.
func (m *Model) Take() *gate.Instance {
	inst := m.instance
	m.instance = nil
	return inst
}

// Decline cancels the pending action and clears the overlay.
func (m *Model) Decline() {
	if m.instance != nil {
		m.instance.Decline()
		m.instance = nil
	}
}

// View renders the modal, empty when idle.
func (m *Model) View() string {
	if m.instance == nil {
		return ""
	}

	inner := m.width - 6
	var b strings.Builder
	b.WriteString(m.th.Modal.Title.Render("Confirm") + "\n\n")
	b.WriteString(m.th.Modal.Body.Render(wordwrap.String(m.instance.Prompt(), inner)) + "\n\n")
	b.WriteString(m.th.Footer.Help.Render("y/enter confirm · n/esc cancel"))

	return m.th.Modal.Frame.Width(m.width).Render(b.String())
}

// Overlay centers the modal over the given backdrop.
func (m *Model) Overlay(backdrop string, width, height int) string {
	if m.instance == nil {
		return backdrop
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.View())
}
