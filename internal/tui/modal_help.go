package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHelpModal renders the key help centered over the page.
func (m *PortfolioModel) renderHelpModal(rc RenderContext) string {
	pal := rc.Palette
	accent := lipgloss.Color(pal.Accent)

	m.help.Styles.FullKey = lipgloss.NewStyle().Foreground(accent)
	m.help.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Muted))
	m.help.Styles.FullSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Dim))

	header := lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Render("Keyboard & Mouse")

	mouse := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Dim)).
		Render("Click a navbar entry to jump to it • Wheel scrolls the page")

	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Dim)).
		Render("?/ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		mouse,
		statusBar,
	)

	finalModal := lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Render(modal)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, finalModal,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(pal.Background)))
}
