package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the portfolio
func (m *PortfolioModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading portfolio..."
	}

	rc := m.renderContext()

	if m.helpVisible {
		return m.renderHelpModal(rc)
	}

	navbar := RenderNavbar(rc, m.profile, m.nav.Entries(m.activeID))
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.viewport.Height).
		Background(lipgloss.Color(rc.Palette.Background)).
		Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, navbar, body, m.renderStatusLine(rc))
}
