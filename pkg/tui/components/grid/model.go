// Package grid renders one admin screen as a navigable data grid with
// row selection, live filtering and a page window.
package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/douanani/rihladz-admin/pkg/screen"
	"github.com/douanani/rihladz-admin/pkg/tui/theme"
)

// Model wraps one screen controller for terminal rendering.
type Model struct {
	table screen.Table
	th    theme.Theme

	cursor    int
	searching bool
	search    textinput.Model

	width int
}

// NewModel constructs the grid for one screen.
func NewModel(table screen.Table, th theme.Theme) *Model {
	ti := textinput.New()
	ti.Placeholder = "filter " + table.Name()
	ti.CharLimit = 80
	return &Model{table: table, th: th, search: ti}
}

// Table exposes the wrapped screen.
func (m *Model) Table() screen.Table { return m.table }

// SetWidth updates the rendered width.
func (m *Model) SetWidth(w int) {
	m.width = w
	m.search.SetWidth(w - 4)
}

// Searching reports whether the filter input has focus.
func (m *Model) Searching() bool { return m.searching }

// StartSearch focuses the filter input.
func (m *Model) StartSearch() tea.Cmd {
	m.searching = true
	m.search.SetValue(m.table.Query())
	return m.search.Focus()
}

// StopSearch blurs the filter input, keeping the applied query.
func (m *Model) StopSearch() {
	m.searching = false
	m.search.Blur()
}

// ClearSearch blurs the input and drops the query.
func (m *Model) ClearSearch() {
	m.StopSearch()
	m.search.SetValue("")
	m.table.SetQuery("")
	m.cursor = 0
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards messages to the filter input while searching; every
// keystroke re-applies the query so the grid filters live.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.searching {
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.table.SetQuery(m.search.Value())
	m.clampCursor()
	return m, cmd
}

// CursorUp moves the row cursor, paging backwards past the top.
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		return
	}
	if m.table.PageIndex() > 0 {
		m.table.PrevPage()
		m.cursor = len(m.table.RowIDs()) - 1
	}
}

// CursorDown moves the row cursor, paging forwards past the bottom.
func (m *Model) CursorDown() {
	if m.cursor < len(m.table.RowIDs())-1 {
		m.cursor++
		return
	}
	if m.table.PageIndex() < m.table.PageCount()-1 {
		m.table.NextPage()
		m.cursor = 0
	}
}

// NextPage advances the page window.
func (m *Model) NextPage() {
	m.table.NextPage()
	m.clampCursor()
}

// PrevPage rewinds the page window.
func (m *Model) PrevPage() {
	m.table.PrevPage()
	m.clampCursor()
}

// CyclePageSize rotates through the screen's rows-per-page values.
func (m *Model) CyclePageSize() {
	sizes := m.table.PageSizes()
	if len(sizes) == 0 {
		return
	}
	current := m.table.PageSize()
	next := sizes[0]
	for i, s := range sizes {
		if s == current && i+1 < len(sizes) {
			next = sizes[i+1]
			break
		}
	}
	m.table.SetPageSize(next)
	m.cursor = 0
}

// CurrentID returns the id under the cursor, empty when the page is
// empty.
func (m *Model) CurrentID() string {
	ids := m.table.RowIDs()
	if len(ids) == 0 {
		return ""
	}
	if m.cursor >= len(ids) {
		return ids[len(ids)-1]
	}
	return ids[m.cursor]
}

// ToggleCurrent flips the selection of the row under the cursor.
func (m *Model) ToggleCurrent() {
	if id := m.CurrentID(); id != "" {
		m.table.Toggle(id)
	}
}

// Reset clamps the cursor after an external mutation shrank the page.
func (m *Model) Reset() {
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.table.RowIDs())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

// View renders the grid.
func (m *Model) View() string {
	var b strings.Builder

	if m.searching {
		b.WriteString("/" + m.search.View())
		b.WriteString("\n\n")
	} else if q := m.table.Query(); q != "" {
		b.WriteString(m.th.Grid.Pager.Render("filter: "+q) + "\n\n")
	}

	if m.table.Loading() {
		b.WriteString(m.th.Grid.Empty.Render("loading " + m.table.Name() + "..."))
		return b.String()
	}
	if err := m.table.LoadErr(); err != nil && m.table.Total() == 0 {
		b.WriteString(m.th.Footer.Problem.Render(err.Error()))
		return b.String()
	}

	rows := m.table.Rows()
	ids := m.table.RowIDs()
	cols := m.table.Columns()
	widths := columnWidths(cols, rows)

	var head strings.Builder
	head.WriteString("      ")
	for i, col := range cols {
		head.WriteString(pad(col.Title, widths[i]))
		head.WriteString("  ")
	}
	b.WriteString(m.th.Grid.Header.Render(head.String()) + "\n")

	if len(rows) == 0 {
		b.WriteString(m.th.Grid.Empty.Render("  no matching records") + "\n")
	}

	for i, row := range rows {
		mark := "[ ]"
		if m.table.Selected(ids[i]) {
			mark = "[x]"
		}
		pointer := "  "
		if i == m.cursor {
			pointer = "> "
		}

		var line strings.Builder
		line.WriteString(pointer + mark + " ")
		for j, cell := range row {
			line.WriteString(pad(cell, widths[j]))
			line.WriteString("  ")
		}

		style := m.th.Grid.Row
		switch {
		case i == m.cursor:
			style = m.th.Grid.Cursor
		case m.table.Selected(ids[i]):
			style = m.th.Grid.Selected
		}
		b.WriteString(style.Render(strings.TrimRight(line.String(), " ")) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.th.Grid.Pager.Render(m.pagerLine()) + "\n")
	b.WriteString(m.th.Grid.Pager.Render(m.table.SummaryLine()))

	return b.String()
}

func (m *Model) pagerLine() string {
	line := fmt.Sprintf("page %d/%d", m.table.PageIndex()+1, m.table.PageCount())
	if m.table.TotalFiltered() != m.table.Total() {
		line += fmt.Sprintf(" · %d of %d match", m.table.TotalFiltered(), m.table.Total())
	}
	if n := m.table.SelectionCount(); n > 0 {
		line += fmt.Sprintf(" · %d selected", n)
	}
	return line
}

func columnWidths(cols []screen.Column, rows [][]string) []int {
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = ansi.PrintableRuneWidth(col.Title)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := ansi.PrintableRuneWidth(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	for i := range widths {
		if widths[i] > 40 {
			widths[i] = 40
		}
	}
	return widths
}

// pad truncates or pads a cell to its column width, measuring display
// cells so multibyte and wide runes never get split.
func pad(s string, width int) string {
	if ansi.PrintableRuneWidth(s) > width {
		s = truncate.StringWithTail(s, uint(width), "…")
	}
	if gap := width - ansi.PrintableRuneWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
