package tui

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/theme"
)

// RenderContext is the read-only snapshot handed to every renderer. The
// theme flag and active section are copied in, never shared.
type RenderContext struct {
	Theme    model.ThemeFlag
	Palette  theme.Palette
	ActiveID string
	Width    int
	Height   int

	// Hyperlinks enables OSC 8 links around contact rows.
	Hyperlinks bool

	zones  *zone.Manager
	prefix string
}

// NewRenderContext builds a snapshot without mouse zones.
func NewRenderContext(flag model.ThemeFlag, themes theme.Set, width int) RenderContext {
	return RenderContext{
		Theme:   flag,
		Palette: themes.For(flag),
		Width:   width,
	}
}

// mark wraps s in a clickable zone when zones are enabled.
func (rc RenderContext) mark(id, s string) string {
	if rc.zones == nil {
		return s
	}
	return rc.zones.Mark(rc.prefix+id, s)
}

func (rc RenderContext) widthOr(fallback int) int {
	if rc.Width <= 0 {
		return fallback
	}
	return rc.Width
}
