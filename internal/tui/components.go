package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderBranding renders "folio" with a teal gradient
func renderBranding(background string) string {
	colors := []string{
		"#5EEAD4", // (f)
		"#2DD4BF", // (o)
		"#14B8A6", // (l)
		"#0D9488", // (i)
		"#0F766E", // (o)
	}

	var result string
	for i, char := range "folio" {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(background)).
			Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(string(char))
	}

	return result
}

// renderStatusLine renders the status/help line at the bottom of the screen
func (m *PortfolioModel) renderStatusLine(rc RenderContext) string {
	pal := rc.Palette
	baseStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(pal.Surface)).
		Foreground(lipgloss.Color(pal.Muted))

	w := m.width
	veryNarrow := w < 60
	narrow := w < 80
	medium := w < 120

	var leftText string
	if item, ok := m.nav.Item(m.activeID); ok {
		if veryNarrow {
			leftText = ansi.Truncate(item.Label, 5, "")
		} else {
			leftText = fmt.Sprintf("[%s]", item.Label)
		}
	}

	var statusText string
	if msg, isErr := m.currentStatus(); msg != "" {
		statusText = msg
		if isErr {
			baseStyle = baseStyle.Foreground(lipgloss.Color("#FF6666"))
		}
	} else if veryNarrow {
		statusText = "Tab • t • ? • q"
	} else if narrow {
		statusText = "?: Help • Tab: Next • t: Theme • q: Quit"
	} else if medium {
		statusText = "Tab: Next • 1-9: Jump • j/k: Scroll • t: Theme • d: Resume • q: Quit"
	} else {
		statusText = "?: Help • Click entries • Wheel: scroll • Tab/Shift+Tab: Sections • 1-9: Jump • t: Theme • d: Resume • r: Replay • q: Quit"
	}

	var rightParts []string
	if !veryNarrow {
		rightParts = append(rightParts, rc.Theme.Name())
	}
	if w >= 30 {
		rightParts = append(rightParts, renderBranding(pal.Surface))
	}
	rightText := strings.Join(rightParts, "  ")

	leftWidth := lipgloss.Width(leftText) + 2
	rightWidth := lipgloss.Width(rightText) + 2
	if leftWidth+rightWidth >= w {
		if w < 20 {
			return baseStyle.Width(w).Render(leftText)
		}
		leftWidth = min(10, w/3)
		rightWidth = min(15, w/3)
	}

	centerWidth := max(0, w-leftWidth-rightWidth)

	leftStyle := baseStyle.Align(lipgloss.Left).Width(leftWidth)
	centerStyle := baseStyle.Align(lipgloss.Center).Width(centerWidth)
	rightStyle := baseStyle.Align(lipgloss.Right).Width(rightWidth)

	if lipgloss.Width(leftText) > leftWidth {
		leftText = ansi.Truncate(leftText, max(0, leftWidth-1), "")
	}
	if lipgloss.Width(statusText) > centerWidth {
		statusText = ansi.Truncate(statusText, max(0, centerWidth-1), "")
	}
	if lipgloss.Width(rightText) > rightWidth {
		// styled text is dropped rather than cut
		rightText = ""
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Render(leftText),
		centerStyle.Render(statusText),
		rightStyle.Render(rightText),
	)
}
