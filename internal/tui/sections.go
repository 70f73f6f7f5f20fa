package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/navigator"
)

// buildContent renders every section top to bottom and records where each
// one starts. Each section is at least one viewport tall so that any of
// them can be scrolled to the top. The hero is sized for the full heading
// so typing never shifts the sections below it.
func buildContent(rc RenderContext, p model.Profile, items []model.NavItem, words []string, vpHeight int) (string, []navigator.Bound) {
	width := rc.widthOr(defaultWidth)
	minHeight := vpHeight
	if minHeight < 1 {
		minHeight = 1
	}

	page := lipgloss.NewStyle().
		Width(width).
		Background(lipgloss.Color(rc.Palette.Background)).
		Foreground(lipgloss.Color(rc.Palette.Foreground))

	blocks := make([]string, 0, len(items))
	bounds := make([]navigator.Bound, 0, len(items))
	line := 0

	for i, item := range items {
		var block string
		if i == 0 {
			height := max(minHeight, lipgloss.Height(RenderHero(rc, p, strings.Split(p.Heading, " "))))
			block = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, RenderHero(rc, p, words))
		} else {
			block = renderSection(rc, item, p.Body(item.ID))
			if h := lipgloss.Height(block); h < minHeight {
				block += strings.Repeat("\n", minHeight-h)
			}
		}
		block = page.Render(block)

		bounds = append(bounds, navigator.Bound{ID: item.ID, Start: line})
		blocks = append(blocks, block)
		line += lipgloss.Height(block)
	}

	return strings.Join(blocks, "\n"), bounds
}

// renderSection renders a titled body section.
func renderSection(rc RenderContext, item model.NavItem, body string) string {
	pal := rc.Palette
	width := contentWidth(rc.Width)

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Foreground)).
		Bold(true).
		Render(item.Label)
	rule := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Accent)).
		Render(strings.Repeat("─", min(width, lipgloss.Width(item.Label)+4)))

	if strings.TrimSpace(body) == "" {
		body = "Coming soon"
	}
	text := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Muted)).
		Width(width).
		Render(strings.TrimSpace(body))

	block := lipgloss.JoinVertical(lipgloss.Left, "", title, rule, "", text, "")
	return lipgloss.PlaceHorizontal(rc.widthOr(defaultWidth), lipgloss.Center, block)
}
