// Package statusbar renders the bottom help line and the latest
// notification.
package statusbar

import (
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/douanani/rihladz-admin/pkg/notify"
	"github.com/douanani/rihladz-admin/pkg/tui/theme"
)

// Model renders key help plus the newest feed entry.
type Model struct {
	th   theme.Theme
	feed *notify.Feed
	help string
}

// NewModel constructs the status bar over the shared feed.
func NewModel(th theme.Theme, feed *notify.Feed) *Model {
	return &Model{
		th:   th,
		feed: feed,
		help: "tab screen · / filter · space select · a all · d delete · D delete selected · enter open · r refresh · s page size · q quit",
	}
}

// View renders the bar.
func (m *Model) View(width int) string {
	lines := []string{m.th.Footer.Help.Render(m.help)}

	if last, ok := m.feed.Last(); ok {
		style := m.th.Footer.Notice
		if last.Level == notify.Problem {
			style = m.th.Footer.Problem
		}
		lines = append(lines, style.Render(last.Text))
	}

	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
