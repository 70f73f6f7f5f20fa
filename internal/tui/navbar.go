package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/navigator"
)

// maxJumpEntries is how many sections the 1-9 keys can reach.
const maxJumpEntries = 9

// RenderNavbar renders the sticky navigation bar. Entry states come from the
// navigator; the active id is whatever the context carries.
func RenderNavbar(rc RenderContext, p model.Profile, entries []navigator.Entry) string {
	pal := rc.Palette
	width := rc.widthOr(defaultWidth)

	bar := lipgloss.NewStyle().Background(lipgloss.Color(pal.Surface))
	accent := bar.Foreground(lipgloss.Color(pal.Accent)).Bold(true)
	inactive := bar.Foreground(lipgloss.Color(pal.Muted))
	active := accent.Underline(true)

	logo := rc.mark(zoneLogo, bar.Foreground(lipgloss.Color(pal.Foreground)).Bold(true).Render(logoText(p))+accent.Render("."))

	var labels, compact []string
	var current string
	for i, e := range entries {
		style := inactive
		if e.State == navigator.Active {
			style = active
			current = rc.mark(zoneNavEntry+e.Item.ID, style.Render(e.Item.Label))
		}
		labels = append(labels, rc.mark(zoneNavEntry+e.Item.ID, style.Render(e.Item.Label)))
		if i < maxJumpEntries {
			compact = append(compact, rc.mark(zoneNavEntry+e.Item.ID, style.Render(strconv.Itoa(i+1))))
		}
	}
	if len(entries) > maxJumpEntries {
		compact = append(compact, inactive.Render("…"))
	}

	// The toggle shows the theme it switches to.
	toggleGlyph := "☾"
	if rc.Theme.IsDark {
		toggleGlyph = "☀"
	}
	toggle := rc.mark(zoneThemeToggle, bar.Foreground(lipgloss.Color(pal.Foreground)).Render(toggleGlyph))
	resume := rc.mark(zoneNavResume, lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.OnAccent)).
		Background(lipgloss.Color(pal.Accent)).
		Padding(0, 1).
		Render("Resume"))

	gap := bar.Render("  ")
	candidates := []string{
		strings.Join(labels, gap) + gap + toggle + gap + resume,
		strings.Join(compact, bar.Render(" ")) + gap + toggle + gap + resume,
		current + gap + toggle,
		toggle,
	}

	inner := width - 4
	right := ""
	for _, c := range candidates {
		if lipgloss.Width(logo)+1+lipgloss.Width(c) <= inner {
			right = c
			break
		}
	}

	fill := max(1, inner-lipgloss.Width(logo)-lipgloss.Width(right))
	row := logo + bar.Render(strings.Repeat(" ", fill)) + right

	return bar.
		Width(width).
		Padding(1, 2, 0).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(pal.Border)).
		BorderBackground(lipgloss.Color(pal.Surface)).
		MaxHeight(navbarHeight).
		Render(row)
}

// logoText uses the profile name's first word, falling back to "folio".
func logoText(p model.Profile) string {
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		return fields[0]
	}
	return "folio"
}
