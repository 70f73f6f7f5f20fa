package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tinytelemetry/folio/internal/model"
)

func TestSet_For(t *testing.T) {
	t.Parallel()

	s := DefaultSet()
	if got := s.For(model.ThemeFlag{IsDark: true}).Name; got != "dark" {
		t.Fatalf("dark flag palette = %q", got)
	}
	if got := s.For(model.ThemeFlag{}).Name; got != "light" {
		t.Fatalf("light flag palette = %q", got)
	}
}

func TestLoadSet_Overrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.toml")
	body := "[dark]\naccent = \"#22D3EE\"\n\n[light]\nbackground = \"#fff\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := LoadSet(path)
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}
	if s.Dark.Accent != "#22D3EE" {
		t.Fatalf("dark accent = %q", s.Dark.Accent)
	}
	if s.Dark.Background != Dark().Background {
		t.Fatalf("dark background changed: %q", s.Dark.Background)
	}
	if s.Light.Background != "#fff" {
		t.Fatalf("light background = %q", s.Light.Background)
	}
}

func TestLoadSet_InvalidColor(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("[dark]\naccent = \"teal\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := LoadSet(path)
	if err == nil {
		t.Fatal("expected error for non-hex color")
	}
	if s != DefaultSet() {
		t.Fatal("invalid file should fall back to defaults")
	}
}

func TestLoadSet_EmptyPath(t *testing.T) {
	t.Parallel()

	s, err := LoadSet("")
	if err != nil || s != DefaultSet() {
		t.Fatalf("LoadSet(\"\") = %+v, %v", s, err)
	}
}
