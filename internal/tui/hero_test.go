package tui

import (
	"strings"
	"testing"

	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/theme"
)

func TestRenderHero_ShowsContactTargets(t *testing.T) {
	t.Parallel()

	p := model.DefaultProfile()
	words := strings.Fields(p.Heading)

	tests := []struct {
		name       string
		hyperlinks bool
	}{
		{"plain", false},
		{"osc8", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rc := NewRenderContext(model.ThemeFlag{IsDark: true}, theme.DefaultSet(), 100)
			rc.Hyperlinks = tt.hyperlinks
			out := RenderHero(rc, p, words)

			for _, link := range p.Contacts {
				if !strings.Contains(out, link.Href) {
					t.Errorf("hero missing href %q", link.Href)
				}
				osc := "\x1b]8;;" + link.Href + "\x1b\\"
				if got := strings.Contains(out, osc); got != tt.hyperlinks {
					t.Errorf("OSC 8 link for %q present = %v, want %v", link.Href, got, tt.hyperlinks)
				}
			}
		})
	}
}

func TestRenderHero_TruncatesLongHref(t *testing.T) {
	t.Parallel()

	p := model.DefaultProfile()
	long := "https://example.com/" + strings.Repeat("segment/", 20)
	p.Contacts = []model.ContactLink{{Label: "Blog", Href: long}}

	rc := NewRenderContext(model.ThemeFlag{}, theme.DefaultSet(), 40)
	out := RenderHero(rc, p, strings.Fields(p.Heading))

	if strings.Contains(out, long) {
		t.Fatal("long href rendered untruncated")
	}
	if !strings.Contains(out, "https://example.com/") || !strings.Contains(out, "…") {
		t.Fatal("truncated href missing its prefix or ellipsis")
	}
}

func TestSupportsHyperlinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"bare xterm", map[string]string{"TERM": "xterm-256color"}, false},
		{"ghostty", map[string]string{"TERM_PROGRAM": "ghostty"}, true},
		{"iterm program", map[string]string{"TERM_PROGRAM": "iTerm.app"}, true},
		{"kitty term", map[string]string{"TERM": "xterm-kitty"}, true},
		{"alacritty term", map[string]string{"TERM": "alacritty"}, true},
		{"vte", map[string]string{"VTE_VERSION": "7600"}, true},
		{"tmux hides outer terminal", map[string]string{"TERM_PROGRAM": "tmux", "VTE_VERSION": "7600"}, false},
		{"iterm over ssh", map[string]string{"LC_TERMINAL": "iTerm2"}, true},
		{"empty", map[string]string{}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			getenv := func(k string) string { return tt.env[k] }
			if got := SupportsHyperlinks(getenv); got != tt.want {
				t.Errorf("SupportsHyperlinks() = %v, want %v", got, tt.want)
			}
		})
	}
}
