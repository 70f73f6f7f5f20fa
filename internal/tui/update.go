package tui

import (
	"log"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/folio/internal/typewriter"
)

// Update handles messages
func (m *PortfolioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.refreshContent()
		m.observeScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case typewriter.TickMsg:
		var cmd tea.Cmd
		m.headline, cmd = m.headline.Update(msg)
		m.refreshContent()
		return m, cmd

	case resumeSavedMsg:
		if msg.err != nil {
			log.Printf("tui: save resume: %v", msg.err)
			m.setStatus("Resume download failed: "+msg.err.Error(), true)
			return m, m.expireStatus()
		}
		log.Printf("tui: resume saved to %s", msg.path)
		m.setStatus("Resume saved to "+msg.path, false)
		return m, m.expireStatus()

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status, m.statusErr = "", false
		}
		return m, nil
	}

	return m, nil
}

// handleMouseEvent processes mouse interactions
func (m *PortfolioModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.helpVisible {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.handleMouseClick(msg)

		case tea.MouseButtonWheelUp:
			if m.reverseScrollWheel {
				m.scrollBy(3)
			} else {
				m.scrollBy(-3)
			}
			return m, nil

		case tea.MouseButtonWheelDown:
			if m.reverseScrollWheel {
				m.scrollBy(-3)
			} else {
				m.scrollBy(3)
			}
			return m, nil
		}
	}

	return m, nil
}

// handleMouseClick resolves a left click against the marked zones.
func (m *PortfolioModel) handleMouseClick(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.zones == nil {
		return m, nil
	}

	for _, item := range m.nav.Items() {
		if m.inZone(zoneNavEntry+item.ID, msg) {
			m.nav.OnSelect(item)
			return m, nil
		}
	}

	for i, link := range m.profile.Contacts {
		if m.inZone(zoneContact+strconv.Itoa(i), msg) {
			m.setStatus(link.Label+": "+link.Href, false)
			return m, m.expireStatus()
		}
	}

	switch {
	case m.inZone(zoneLogo, msg):
		m.nav.Select(m.heroID())
	case m.inZone(zoneThemeToggle, msg):
		m.toggleTheme()
	case m.inZone(zoneNavResume, msg), m.inZone(zoneHeroResume, msg):
		return m, m.saveResume()
	case m.inZone(zoneHeroAbout, msg), m.inZone(zoneChevron, msg):
		m.nav.Select(m.aboutID())
	}
	return m, nil
}

func (m *PortfolioModel) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(m.zonePrefix + id)
	return z != nil && z.InBounds(msg)
}
