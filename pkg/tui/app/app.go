// Package teaui hosts the Bubble Tea program for the admin console.
package teaui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/douanani/rihladz-admin/pkg/screen"
	"github.com/douanani/rihladz-admin/pkg/tui/components/confirm"
	"github.com/douanani/rihladz-admin/pkg/tui/components/grid"
	"github.com/douanani/rihladz-admin/pkg/tui/components/statusbar"
	"github.com/douanani/rihladz-admin/pkg/tui/events"
	"github.com/douanani/rihladz-admin/pkg/tui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeConfirm
	modeDetails
)

// Model contains UI state.
type Model struct {
	ctx     context.Context
	screens *screen.Screens
	th      theme.Theme

	mode    mode
	active  int
	grids   []*grid.Model
	confirm *confirm.Model
	bar     *statusbar.Model

	detailsTitle string
	detailsText  string

	// busy blocks further mutations on a screen while one is executing.
	busy map[string]bool

	width  int
	height int
}

// New builds the console UI over the wired screens.
func New(ctx context.Context, screens *screen.Screens) *Model {
	th := theme.Default()

	tables := screens.Tables()
	grids := make([]*grid.Model, 0, len(tables))
	for _, t := range tables {
		grids = append(grids, grid.NewModel(t, th))
	}

	return &Model{
		ctx:     ctx,
		screens: screens,
		th:      th,
		grids:   grids,
		confirm: confirm.NewModel(th),
		bar:     statusbar.NewModel(th, screens.Feed),
		busy:    make(map[string]bool),
	}
}

// Init loads every screen up front.
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.grids))
	for _, g := range m.grids {
		cmds = append(cmds, m.loadCmd(g.Table()))
	}
	return tea.Batch(cmds...)
}

// loadCmd flags the screen as loading, then fetches in the background.
// Only the gateway call runs in the command; the snapshot is applied
// in Update so the store is never written off the program goroutine.
func (m *Model) loadCmd(t screen.Table) tea.Cmd {
	t.BeginLoad()
	return func() tea.Msg {
		return events.LoadFinishedMsg{Screen: t.Name(), Apply: t.Fetch(m.ctx)}
	}
}

func (m *Model) current() *grid.Model { return m.grids[m.active] }

// Update routes messages by mode.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, g := range m.grids {
			g.SetWidth(msg.Width)
		}
		m.confirm.SetWidth(min(msg.Width-4, 60))
		return m, nil

	case events.LoadFinishedMsg:
		if msg.Apply != nil {
			msg.Apply()
		}
		for _, g := range m.grids {
			if g.Table().Name() == msg.Screen {
				g.Reset()
			}
		}
		return m, nil

	case events.GateResolvedMsg:
		m.busy[msg.Screen] = false
		if msg.Instance != nil {
			msg.Instance.Resolve(msg.Outcome)
		}
		for _, g := range m.grids {
			if g.Table().Name() == msg.Screen {
				g.Reset()
			}
		}
		return m, nil

	case events.DetailsMsg:
		if t, ok := m.screens.Lookup(msg.Screen); ok {
			if text, err := t.FinishView(msg.ID, msg.Err); err == nil {
				m.detailsTitle = t.Singular() + " " + msg.ID
				m.detailsText = text
				m.mode = modeDetails
			}
		}
		return m, nil

	case tea.KeyPressMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeDetails:
			return m.updateDetails(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	g := m.current()
	t := g.Table()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.active = (m.active + 1) % len(m.grids)
	case "shift+tab":
		m.active = (m.active + len(m.grids) - 1) % len(m.grids)

	case "/":
		m.mode = modeSearch
		return m, g.StartSearch()
	case "esc":
		g.ClearSearch()

	case "up", "k":
		g.CursorUp()
	case "down", "j":
		g.CursorDown()
	case "left", "h":
		g.PrevPage()
	case "right", "l":
		g.NextPage()
	case "s":
		g.CyclePageSize()

	case "space":
		g.ToggleCurrent()
	case "a":
		t.ToggleAll()

	case "d":
		if id := g.CurrentID(); id != "" && !m.busy[t.Name()] {
			m.confirm.Show(t.Delete(id))
			if m.confirm.Active() {
				m.mode = modeConfirm
			}
		}
	case "D":
		if !m.busy[t.Name()] {
			m.confirm.Show(t.DeleteSelected())
			if m.confirm.Active() {
				m.mode = modeConfirm
			}
		}

	case "v", "i", "g":
		if id := g.CurrentID(); id != "" && !m.busy[t.Name()] {
			targets := t.StatusTargets()
			var target string
			switch msg.String() {
			case "v":
				target = pick(targets, "reviewed")
			case "i":
				target = pick(targets, "ignored")
			case "g":
				target = pick(targets, "pending")
			}
			if target != "" {
				m.confirm.Show(t.ChangeStatus(g.CurrentID(), target))
				if m.confirm.Active() {
					m.mode = modeConfirm
				}
			}
		}

	case "enter":
		if id := g.CurrentID(); id != "" {
			return m, m.detailsCmd(t, id)
		}

	case "r":
		return m, m.loadCmd(t)
	}

	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	g := m.current()
	switch msg.String() {
	case "enter":
		g.StopSearch()
		m.mode = modeBrowse
		return m, nil
	case "esc":
		g.ClearSearch()
		m.mode = modeBrowse
		return m, nil
	}
	_, cmd := g.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		inst := m.confirm.Take()
		m.mode = modeBrowse
		if inst == nil {
			return m, nil
		}
		name := m.current().Table().Name()
		m.busy[name] = true
		// Execute runs the remote call only; the local patch, release
		// and notification happen in Update via Resolve.
		return m, func() tea.Msg {
			return events.GateResolvedMsg{Screen: name, Instance: inst, Outcome: inst.Execute(m.ctx)}
		}
	case "n", "esc":
		m.confirm.Decline()
		m.mode = modeBrowse
	}
	return m, nil
}

func (m *Model) updateDetails(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.detailsTitle = ""
		m.detailsText = ""
		m.mode = modeBrowse
	}
	return m, nil
}

// detailsCmd captures the view's remote side effect (mark-read) on the
// program goroutine, runs it in the background, and leaves the local
// patch and rendering to Update.
func (m *Model) detailsCmd(t screen.Table, id string) tea.Cmd {
	remote := t.ViewRemote(id)
	return func() tea.Msg {
		msg := events.DetailsMsg{Screen: t.Name(), ID: id}
		if remote != nil {
			msg.Err = remote(m.ctx)
		}
		return msg
	}
}

// View renders the active screen with the tab bar and status bar.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.tabsView() + "\n\n")
	b.WriteString(m.current().View())
	b.WriteString("\n\n")
	b.WriteString(m.bar.View(m.width))

	page := b.String()

	switch m.mode {
	case modeConfirm:
		return m.confirm.Overlay(page, m.width, m.height)
	case modeDetails:
		return m.detailsView()
	}
	return page
}

func (m *Model) tabsView() string {
	tabs := make([]string, 0, len(m.grids))
	for i, g := range m.grids {
		style := m.th.Tabs.Inactive
		if i == m.active {
			style = m.th.Tabs.Active
		}
		tabs = append(tabs, style.Render(g.Table().Name()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) detailsView() string {
	var b strings.Builder
	b.WriteString(m.th.Modal.Title.Render(m.detailsTitle) + "\n\n")
	b.WriteString(m.th.Modal.Body.Render(m.detailsText) + "\n\n")
	b.WriteString(m.th.Footer.Help.Render("esc close"))
	modal := m.th.Modal.Frame.Width(min(m.width-4, 72)).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, screens *screen.Screens) error {
	p := tea.NewProgram(New(ctx, screens), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func pick(targets []string, want string) string {
	for _, t := range targets {
		if t == want {
			return t
		}
	}
	return ""
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
