package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/navigator"
	"github.com/tinytelemetry/folio/internal/theme"
	"github.com/tinytelemetry/folio/internal/typewriter"
)

const (
	navbarHeight     = 3
	statusLineHeight = 1
	statusTTL        = 5 * time.Second
)

// Options configures a PortfolioModel.
type Options struct {
	Profile            model.Profile
	Themes             theme.Set
	Theme              model.ThemeFlag
	Typing             typewriter.Options
	DownloadDir        string
	ReverseScrollWheel bool
	Hyperlinks         bool          // wrap contact rows in OSC 8 links
	Zones              *zone.Manager // nil disables mouse hit-testing
}

// PortfolioModel is the page-assembly layer: it owns the theme flag and the
// active section id and hands snapshots of both to the renderers.
type PortfolioModel struct {
	profile model.Profile
	themes  theme.Set
	theme   model.ThemeFlag

	// Written only by observeScroll.
	activeID string

	nav      *navigator.Navigator
	observer navigator.Observer
	headline typewriter.Model

	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	zones      *zone.Manager
	zonePrefix string

	width       int
	height      int
	helpVisible bool

	downloadDir        string
	reverseScrollWheel bool
	hyperlinks         bool

	status    string
	statusErr bool
	statusSeq int
}

// resumeSavedMsg reports the outcome of a resume download.
type resumeSavedMsg struct {
	path string
	err  error
}

// NewPortfolioModel validates the profile and builds the page.
func NewPortfolioModel(opts Options) (*PortfolioModel, error) {
	if err := opts.Profile.Validate(); err != nil {
		return nil, err
	}

	tw, err := typewriter.New(opts.Profile.Heading, opts.Typing)
	if err != nil {
		return nil, fmt.Errorf("headline: %w", err)
	}

	m := &PortfolioModel{
		profile:            opts.Profile,
		themes:             opts.Themes,
		theme:              opts.Theme,
		headline:           typewriter.NewModel(tw),
		viewport:           viewport.New(0, 0),
		help:               help.New(),
		keys:               DefaultKeyMap(),
		zones:              opts.Zones,
		downloadDir:        opts.DownloadDir,
		reverseScrollWheel: opts.ReverseScrollWheel,
		hyperlinks:         opts.Hyperlinks,
	}
	if m.zones != nil {
		m.zonePrefix = m.zones.NewPrefix()
	}

	nav, err := navigator.New(opts.Profile.Sections, m.scrollToSection)
	if err != nil {
		return nil, fmt.Errorf("sections: %w", err)
	}
	m.nav = nav
	m.activeID = nav.Items()[0].ID
	m.refreshContent()

	return m, nil
}

// Init starts the headline animation.
func (m *PortfolioModel) Init() tea.Cmd {
	var cmd tea.Cmd
	m.headline, cmd = m.headline.Start()
	m.refreshContent()
	return cmd
}

// Teardown cancels the headline. Ticks already scheduled are dropped.
func (m *PortfolioModel) Teardown() {
	m.headline = m.headline.Cancel()
}

// ActiveSection returns the section currently in view.
func (m *PortfolioModel) ActiveSection() string {
	return m.activeID
}

// Theme returns the current theme flag.
func (m *PortfolioModel) Theme() model.ThemeFlag {
	return m.theme
}

// Headline returns the revealed part of the heading.
func (m *PortfolioModel) Headline() string {
	return m.headline.Revealed()
}

// HeadlineState returns the animator state.
func (m *PortfolioModel) HeadlineState() typewriter.State {
	return m.headline.State()
}

// renderContext snapshots the values renderers may read.
func (m *PortfolioModel) renderContext() RenderContext {
	return RenderContext{
		Theme:      m.theme,
		Palette:    m.themes.For(m.theme),
		ActiveID:   m.activeID,
		Width:      m.width,
		Height:     m.height,
		Hyperlinks: m.hyperlinks,
		zones:      m.zones,
		prefix:     m.zonePrefix,
	}
}

// heroID is the first configured section; the hero always leads the page.
func (m *PortfolioModel) heroID() string {
	return m.nav.Items()[0].ID
}

// aboutID is where the hero's "About Me" button and chevron lead.
func (m *PortfolioModel) aboutID() string {
	if m.nav.Index(model.DefaultAboutSection) >= 0 {
		return model.DefaultAboutSection
	}
	return m.nav.Next(m.heroID())
}

// resizeViewport fits the viewport between navbar and status line.
func (m *PortfolioModel) resizeViewport() {
	h := m.height - navbarHeight - statusLineHeight
	if h < 0 {
		h = 0
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

// refreshContent re-renders the scrolled page and its section bounds.
func (m *PortfolioModel) refreshContent() {
	content, bounds := buildContent(m.renderContext(), m.profile, m.nav.Items(), m.headline.Words(), m.viewport.Height)
	m.viewport.SetContent(content)
	m.observer = navigator.NewObserver(bounds, m.viewport.Height/3)
}

// setStatus shows a transient message in the status line.
func (m *PortfolioModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
	m.statusSeq++
}

func (m *PortfolioModel) currentStatus() (string, bool) {
	return m.status, m.statusErr
}

// statusExpiredMsg clears the status line if no newer message replaced it.
type statusExpiredMsg struct {
	seq int
}

// expireStatus schedules the current status message to disappear.
func (m *PortfolioModel) expireStatus() tea.Cmd {
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// PortfolioPage adapts PortfolioModel to the Page interface.
type PortfolioPage struct {
	Model *PortfolioModel
}

// NewPortfolioPage wraps a PortfolioModel as a Page.
func NewPortfolioPage(m *PortfolioModel) *PortfolioPage {
	return &PortfolioPage{Model: m}
}

func (p *PortfolioPage) ID() string { return "portfolio" }

func (p *PortfolioPage) Init() tea.Cmd {
	return p.Model.Init()
}

func (p *PortfolioPage) Update(msg tea.Msg) tea.Cmd {
	_, cmd := p.Model.Update(msg)
	return cmd
}

func (p *PortfolioPage) View(_, _ int) string {
	return p.Model.View()
}

func (p *PortfolioPage) Teardown() {
	p.Model.Teardown()
}
