// Package navigator maps page sections to navigation entries.
//
// The navigator never changes the active section itself. Selecting an
// entry asks the host to scroll; the host's Observer then reports which
// section is in view.
package navigator

import (
	"errors"
	"fmt"

	"github.com/tinytelemetry/folio/internal/model"
)

var (
	ErrNoSections       = errors.New("navigator: no sections configured")
	ErrEmptySectionID   = errors.New("navigator: empty section id")
	ErrDuplicateSection = errors.New("navigator: duplicate section id")
)

// EntryState is the visual state of one navigation entry.
type EntryState int

const (
	Inactive EntryState = iota
	Active
)

func (s EntryState) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

// Entry pairs a nav item with its state for one render.
type Entry struct {
	Item  model.NavItem
	State EntryState
}

// RenderEntry classifies item against the active section id.
func RenderEntry(item model.NavItem, activeID string) EntryState {
	if item.ID == activeID {
		return Active
	}
	return Inactive
}

// Navigator holds the fixed, ordered section list and the navigate callback.
type Navigator struct {
	items    []model.NavItem
	index    map[string]int
	navigate func(id string)
}

// New validates items and returns a Navigator. navigate may be nil.
func New(items []model.NavItem, navigate func(id string)) (*Navigator, error) {
	if len(items) == 0 {
		return nil, ErrNoSections
	}

	index := make(map[string]int, len(items))
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("section %d: %w", i, ErrEmptySectionID)
		}
		if _, exists := index[item.ID]; exists {
			return nil, fmt.Errorf("section %q: %w", item.ID, ErrDuplicateSection)
		}
		index[item.ID] = i
	}

	return &Navigator{
		items:    append([]model.NavItem(nil), items...),
		index:    index,
		navigate: navigate,
	}, nil
}

// Items returns a copy of the configured sections in order.
func (n *Navigator) Items() []model.NavItem {
	return append([]model.NavItem(nil), n.items...)
}

// Entries renders every item against activeID.
func (n *Navigator) Entries(activeID string) []Entry {
	entries := make([]Entry, len(n.items))
	for i, item := range n.items {
		entries[i] = Entry{Item: item, State: RenderEntry(item, activeID)}
	}
	return entries
}

// OnSelect asks the host to navigate to item.
func (n *Navigator) OnSelect(item model.NavItem) {
	if n.navigate != nil {
		n.navigate(item.ID)
	}
}

// Select looks up id and selects it. It returns false for unknown ids.
func (n *Navigator) Select(id string) bool {
	i, ok := n.index[id]
	if !ok {
		return false
	}
	n.OnSelect(n.items[i])
	return true
}

// Item returns the item for id.
func (n *Navigator) Item(id string) (model.NavItem, bool) {
	i, ok := n.index[id]
	if !ok {
		return model.NavItem{}, false
	}
	return n.items[i], true
}

// Index returns the position of id, or -1.
func (n *Navigator) Index(id string) int {
	if i, ok := n.index[id]; ok {
		return i
	}
	return -1
}

// Next returns the section after id, wrapping. An unknown id yields the
// first section.
func (n *Navigator) Next(id string) string {
	i := n.Index(id)
	if i < 0 {
		return n.items[0].ID
	}
	return n.items[(i+1)%len(n.items)].ID
}

// Prev returns the section before id, wrapping. An unknown id yields the
// last section.
func (n *Navigator) Prev(id string) string {
	i := n.Index(id)
	if i < 0 {
		return n.items[len(n.items)-1].ID
	}
	return n.items[(i-1+len(n.items))%len(n.items)].ID
}
