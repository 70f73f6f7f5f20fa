package navigator

import (
	"sort"

	"github.com/tinytelemetry/folio/internal/model"
)

// Bound is the first line of a section in the scrolled content.
type Bound struct {
	ID    string
	Start int
}

// Observer reports which section is in view for a scroll offset.
type Observer struct {
	bounds []Bound
	// Lead counts a section as active once its start is within Lead lines
	// of the top of the viewport.
	Lead int
}

// NewObserver sorts bounds by start line.
func NewObserver(bounds []Bound, lead int) Observer {
	sorted := append([]Bound(nil), bounds...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	return Observer{bounds: sorted, Lead: lead}
}

// ActiveAt returns the last section starting at or above offset+Lead, or
// model.NoSection when the offset precedes every section.
func (o Observer) ActiveAt(offset int) string {
	active := model.NoSection
	for _, b := range o.bounds {
		if b.Start > offset+o.Lead {
			break
		}
		active = b.ID
	}
	return active
}

// Start returns the first line of id.
func (o Observer) Start(id string) (int, bool) {
	for _, b := range o.bounds {
		if b.ID == id {
			return b.Start, true
		}
	}
	return 0, false
}

// Last returns the final section id, or model.NoSection when empty.
func (o Observer) Last() string {
	if len(o.bounds) == 0 {
		return model.NoSection
	}
	return o.bounds[len(o.bounds)-1].ID
}
