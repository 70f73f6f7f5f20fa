package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress dispatches key events: the help overlay first, then global
// portfolio shortcuts.
func (m *PortfolioModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	if key.Matches(msg, k.ForceQuit) {
		m.Teardown()
		return m, tea.Quit
	}

	if m.helpVisible {
		if key.Matches(msg, k.Help, k.Escape, k.Quit) {
			m.helpVisible = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, k.Quit):
		m.Teardown()
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.helpVisible = true

	case key.Matches(msg, k.NextSection):
		m.nav.Select(m.nav.Next(m.activeID))

	case key.Matches(msg, k.PrevSection):
		m.nav.Select(m.nav.Prev(m.activeID))

	case key.Matches(msg, k.Jump):
		n, err := strconv.Atoi(msg.String())
		if err == nil {
			items := m.nav.Items()
			if n >= 1 && n <= len(items) {
				m.nav.OnSelect(items[n-1])
			}
		}

	case key.Matches(msg, k.Home):
		m.nav.Select(m.heroID())

	case key.Matches(msg, k.About):
		m.nav.Select(m.aboutID())

	case key.Matches(msg, k.Up):
		m.scrollBy(-1)

	case key.Matches(msg, k.Down):
		m.scrollBy(1)

	case key.Matches(msg, k.PageUp):
		m.scrollBy(-m.viewport.Height)

	case key.Matches(msg, k.PageDown):
		m.scrollBy(m.viewport.Height)

	case key.Matches(msg, k.Top):
		m.viewport.GotoTop()
		m.observeScroll()

	case key.Matches(msg, k.Bottom):
		m.viewport.GotoBottom()
		m.observeScroll()

	case key.Matches(msg, k.ToggleTheme):
		m.toggleTheme()

	case key.Matches(msg, k.Resume):
		return m, m.saveResume()

	case key.Matches(msg, k.Replay):
		var cmd tea.Cmd
		m.headline, cmd = m.headline.Restart()
		m.refreshContent()
		return m, cmd
	}

	return m, nil
}

// scrollToSection is the navigator's navigate callback. It only moves the
// viewport; the active id follows from the observer.
func (m *PortfolioModel) scrollToSection(id string) {
	start, ok := m.observer.Start(id)
	if !ok {
		return
	}
	m.viewport.SetYOffset(start)
	m.observeScroll()
}

// scrollBy moves the viewport by delta lines.
func (m *PortfolioModel) scrollBy(delta int) {
	switch {
	case delta < 0:
		m.viewport.LineUp(-delta)
	case delta > 0:
		m.viewport.LineDown(delta)
	}
	m.observeScroll()
}

// observeScroll is the only writer of activeID.
func (m *PortfolioModel) observeScroll() {
	if m.viewport.AtBottom() && m.viewport.TotalLineCount() > m.viewport.Height {
		m.activeID = m.observer.Last()
		return
	}
	m.activeID = m.observer.ActiveAt(m.viewport.YOffset)
}

// toggleTheme flips the theme and re-renders. The headline keeps its state.
func (m *PortfolioModel) toggleTheme() {
	m.theme = m.theme.Toggle()
	m.refreshContent()
}
