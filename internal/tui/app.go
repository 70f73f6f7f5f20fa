package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// App is the top-level Bubble Tea model. It hosts a single page, tracks the
// window size and resolves mouse zones on every frame.
type App struct {
	page   Page
	width  int
	height int
	zones  *zone.Manager
}

// NewApp creates a new App around page. zones may be nil when mouse
// hit-testing is not needed.
func NewApp(zones *zone.Manager, page Page) *App {
	return &App{page: page, zones: zones}
}

func (a *App) Init() tea.Cmd {
	if a.page == nil {
		return nil
	}
	return a.page.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}
	if a.page == nil {
		return a, nil
	}
	return a, a.page.Update(msg)
}

func (a *App) View() string {
	if a.page == nil {
		return "No active page"
	}
	view := a.page.View(a.width, a.height)
	if a.zones != nil {
		return a.zones.Scan(view)
	}
	return view
}

// Close tears down the page and stops the zone manager.
func (a *App) Close() {
	if a.page != nil {
		a.page.Teardown()
	}
	if a.zones != nil {
		a.zones.Close()
	}
}
