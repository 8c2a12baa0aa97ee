package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Tabs   TabsTheme
	Grid   GridTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// TabsTheme styles the screen switcher across the top.
type TabsTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// GridTheme styles the data grid rows.
type GridTheme struct {
	Header   lipgloss.Style
	Row      lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Pager    lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Notice  lipgloss.Style
	Problem lipgloss.Style
}

// ModalTheme styles centered overlays (confirmation, details).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Tabs: TabsTheme{
			Active: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true).
				Underline(true).
				Padding(0, 1),
			Inactive: lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Padding(0, 1),
		},
		Grid: GridTheme{
			Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
			Row:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			Pager:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
			Problem: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		},
	}
}
