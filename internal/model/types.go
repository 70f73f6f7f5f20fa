package model

// NoSection is the active-section sentinel used before any section is in view.
const NoSection = ""

// NavItem is one navigable page section. IDs are unique within a profile.
type NavItem struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// ContactLink is a social or contact link shown under the hero.
type ContactLink struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
	Icon  string `yaml:"icon" json:"icon"` // single glyph used by the terminal renderer
}

// Resume points at the downloadable resume file.
type Resume struct {
	Path         string `yaml:"path" json:"-"`
	DownloadName string `yaml:"download-name" json:"download_name"`
}

// Profile is the whole portfolio content model shared by the terminal and
// HTTP renderers.
type Profile struct {
	Name      string            `yaml:"name" json:"name"`
	Heading   string            `yaml:"heading" json:"heading"`
	Tagline   string            `yaml:"tagline" json:"tagline"`
	Bio       string            `yaml:"bio" json:"bio"`
	TechStack []string          `yaml:"tech-stack" json:"tech_stack"`
	Contacts  []ContactLink     `yaml:"contacts" json:"contacts"`
	Resume    Resume            `yaml:"resume" json:"resume"`
	Sections  []NavItem         `yaml:"sections" json:"sections"`
	Bodies    map[string]string `yaml:"bodies" json:"bodies"`
}

// Body returns the text for a section, or "" when none is configured.
func (p Profile) Body(id string) string {
	if p.Bodies == nil {
		return ""
	}
	return p.Bodies[id]
}

// ThemeFlag is the dark/light switch owned by the page-assembly layer.
// It is passed by value to renderers.
type ThemeFlag struct {
	IsDark bool
}

// Toggle returns the opposite theme.
func (t ThemeFlag) Toggle() ThemeFlag {
	return ThemeFlag{IsDark: !t.IsDark}
}

// Name returns "dark" or "light".
func (t ThemeFlag) Name() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// ParseTheme maps "dark"/"light" to a ThemeFlag. Anything else yields ok=false.
func ParseTheme(name string) (ThemeFlag, bool) {
	switch name {
	case "dark":
		return ThemeFlag{IsDark: true}, true
	case "light":
		return ThemeFlag{IsDark: false}, true
	}
	return ThemeFlag{}, false
}
