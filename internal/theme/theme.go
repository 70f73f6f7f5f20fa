// Package theme holds the dark and light palettes shared by the terminal
// and HTML renderers.
package theme

import "github.com/tinytelemetry/folio/internal/model"

// Palette is one color scheme. Values are hex strings usable both as
// lipgloss colors and CSS values.
type Palette struct {
	Name string

	Background string
	Surface    string // navbar, badges, contact chips
	Foreground string
	Muted      string // body copy
	Dim        string // status hints, borders

	Accent      string // headline period, caret, active nav entry
	AccentHover string
	OnAccent    string // text drawn on accent backgrounds
	Border      string
}

// Dark mirrors the gray-900 / teal-500 scheme.
func Dark() Palette {
	return Palette{
		Name:        "dark",
		Background:  "#111827",
		Surface:     "#1F2937",
		Foreground:  "#F3F4F6",
		Muted:       "#D1D5DB",
		Dim:         "#6B7280",
		Accent:      "#14B8A6",
		AccentHover: "#2DD4BF",
		OnAccent:    "#FFFFFF",
		Border:      "#374151",
	}
}

// Light mirrors the gray-50 / teal-600 scheme.
func Light() Palette {
	return Palette{
		Name:        "light",
		Background:  "#F9FAFB",
		Surface:     "#FFFFFF",
		Foreground:  "#111827",
		Muted:       "#4B5563",
		Dim:         "#9CA3AF",
		Accent:      "#0D9488",
		AccentHover: "#0F766E",
		OnAccent:    "#FFFFFF",
		Border:      "#E5E7EB",
	}
}

// Set pairs the two palettes.
type Set struct {
	Dark  Palette
	Light Palette
}

// DefaultSet returns the built-in palettes.
func DefaultSet() Set {
	return Set{Dark: Dark(), Light: Light()}
}

// For picks the palette for flag.
func (s Set) For(flag model.ThemeFlag) Palette {
	if flag.IsDark {
		return s.Dark
	}
	return s.Light
}
