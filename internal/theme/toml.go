package theme

import (
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
)

type tomlFile struct {
	Dark  tomlPalette `toml:"dark"`
	Light tomlPalette `toml:"light"`
}

type tomlPalette struct {
	Background  string `toml:"background"`
	Surface     string `toml:"surface"`
	Foreground  string `toml:"foreground"`
	Muted       string `toml:"muted"`
	Dim         string `toml:"dim"`
	Accent      string `toml:"accent"`
	AccentHover string `toml:"accent_hover"`
	OnAccent    string `toml:"on_accent"`
	Border      string `toml:"border"`
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// LoadSet reads palette overrides from a TOML file. Keys left out keep the
// built-in value. An empty path returns DefaultSet.
//
//	[dark]
//	accent = "#22D3EE"
func LoadSet(path string) (Set, error) {
	set := DefaultSet()
	if path == "" {
		return set, nil
	}

	var f tomlFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return set, fmt.Errorf("reading theme %s: %w", path, err)
	}

	var err error
	if set.Dark, err = f.Dark.apply(set.Dark); err != nil {
		return DefaultSet(), fmt.Errorf("theme %s [dark]: %w", path, err)
	}
	if set.Light, err = f.Light.apply(set.Light); err != nil {
		return DefaultSet(), fmt.Errorf("theme %s [light]: %w", path, err)
	}
	return set, nil
}

func (t tomlPalette) apply(p Palette) (Palette, error) {
	fields := []struct {
		key string
		src string
		dst *string
	}{
		{"background", t.Background, &p.Background},
		{"surface", t.Surface, &p.Surface},
		{"foreground", t.Foreground, &p.Foreground},
		{"muted", t.Muted, &p.Muted},
		{"dim", t.Dim, &p.Dim},
		{"accent", t.Accent, &p.Accent},
		{"accent_hover", t.AccentHover, &p.AccentHover},
		{"on_accent", t.OnAccent, &p.OnAccent},
		{"border", t.Border, &p.Border},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		if !hexColor.MatchString(f.src) {
			return p, fmt.Errorf("%s: invalid hex color %q", f.key, f.src)
		}
		*f.dst = f.src
	}
	return p, nil
}
