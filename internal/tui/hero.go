package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/folio/internal/model"
)

const (
	defaultWidth = 80
	heroMaxWidth = 72
)

// Zone ids, relative to the page's zone prefix.
const (
	zoneLogo        = "logo"
	zoneNavEntry    = "nav-"
	zoneThemeToggle = "theme"
	zoneNavResume   = "resume-button"
	zoneHeroAbout   = "hero-about"
	zoneHeroResume  = "hero-resume"
	zoneChevron     = "chevron"
	zoneContact     = "contact-"
)

// RenderHero renders the hero block around the revealed headline words. The
// trailing period and caret are decoration and never part of the words.
func RenderHero(rc RenderContext, p model.Profile, words []string) string {
	pal := rc.Palette
	width := contentWidth(rc.Width)

	base := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Foreground))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Accent)).Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Muted))

	headline := renderHeadline(base.Bold(true), accent, words, width)

	tagline := accent.Render(p.Tagline)
	bio := muted.Width(width).Align(lipgloss.Center).Render(p.Bio)

	button := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true)
	about := rc.mark(zoneHeroAbout, button.
		Foreground(lipgloss.Color(pal.OnAccent)).
		Background(lipgloss.Color(pal.Accent)).
		Render("About Me"))
	resume := rc.mark(zoneHeroResume, button.
		Foreground(lipgloss.Color(pal.Accent)).
		Background(lipgloss.Color(pal.Surface)).
		Render("⤓ Resume"))
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, about, "  ", resume)

	chevron := rc.mark(zoneChevron, lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Dim)).
		Render("↓ about (space)"))

	block := lipgloss.JoinVertical(lipgloss.Center,
		headline,
		"",
		tagline,
		"",
		bio,
		"",
		buttons,
		"",
		renderContacts(rc, p.Contacts, width),
		"",
		renderBadges(rc, p.TechStack, width),
		"",
		chevron,
	)
	return lipgloss.PlaceHorizontal(rc.widthOr(defaultWidth), lipgloss.Center, block)
}

// renderHeadline wraps the revealed words and appends the period and caret.
func renderHeadline(text, accent lipgloss.Style, words []string, width int) string {
	var lines []string
	var line string
	for _, word := range words {
		switch {
		case line == "":
			line = word
		case lipgloss.Width(line)+1+lipgloss.Width(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(text.Render(l))
		b.WriteByte('\n')
	}
	b.WriteString(text.Render(line))
	b.WriteString(accent.Render("."))
	b.WriteString(accent.Blink(true).Render("|"))
	return b.String()
}

// renderContacts draws one row per link with its target spelled out. Rows
// are OSC 8 hyperlinks when the terminal renders them.
func renderContacts(rc RenderContext, links []model.ContactLink, width int) string {
	chip := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rc.Palette.Foreground)).
		Background(lipgloss.Color(rc.Palette.Surface)).
		Padding(0, 1)
	target := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rc.Palette.Accent)).
		Underline(true)

	rows := make([]string, 0, len(links))
	for i, link := range links {
		label := link.Label
		if link.Icon != "" {
			label = link.Icon + " " + label
		}
		href := link.Href
		if room := width - lipgloss.Width(label) - 3; room > 0 && lipgloss.Width(href) > room {
			href = ansi.Truncate(href, room, "…")
		}
		row := chip.Render(label) + " " + target.Render(href)
		if rc.Hyperlinks && link.Href != "" {
			row = hyperlink(link.Href, row)
		}
		rows = append(rows, rc.mark(zoneContact+strconv.Itoa(i), row))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func renderBadges(rc RenderContext, stack []string, width int) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rc.Palette.Accent)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(rc.Palette.Border)).
		Padding(0, 1)

	chips := make([]string, 0, len(stack))
	for _, tech := range stack {
		chips = append(chips, style.Render(tech))
	}
	return wrapChips(chips, width)
}

// wrapChips lays chips out in centered rows no wider than width.
func wrapChips(chips []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, chip := range chips {
		w := lipgloss.Width(chip)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, " ")
			rowWidth++
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// contentWidth is the text column width for a terminal of width w.
func contentWidth(w int) int {
	if w <= 0 {
		w = defaultWidth
	}
	w -= 4
	if w > heroMaxWidth {
		w = heroMaxWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}
