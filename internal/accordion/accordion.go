// Package accordion holds the open/closed state of the service accordions.
package accordion

import (
	"net/url"
	"slices"
	"sort"
	"strings"

	"github.com/markz-studio/markz/internal/content"
)

// Glyphs shown in the accordion header.
const (
	GlyphCollapsed = "+"
	GlyphExpanded  = "−"
)

// QueryParam is the repeated query parameter naming expanded accordions.
const QueryParam = "open"

// Accordion reveals or hides the feature list of one service offering.
// The zero state is collapsed.
type Accordion struct {
	offering content.ServiceOffering
	expanded bool
}

// New returns a collapsed accordion for the offering.
func New(offering content.ServiceOffering) *Accordion {
	return &Accordion{offering: offering}
}

// Toggle flips the accordion between collapsed and expanded.
func (a *Accordion) Toggle() {
	a.expanded = !a.expanded
}

func (a *Accordion) Expanded() bool { return a.expanded }

// Glyph is "+" while collapsed and "−" while expanded.
func (a *Accordion) Glyph() string {
	if a.expanded {
		return GlyphExpanded
	}
	return GlyphCollapsed
}

// Features returns the feature list while expanded and nil while collapsed.
func (a *Accordion) Features() []string {
	if !a.expanded {
		return nil
	}
	return slices.Clone(a.offering.Features)
}

// AllFeatures returns the seeded list regardless of state.
func (a *Accordion) AllFeatures() []string {
	return slices.Clone(a.offering.Features)
}

func (a *Accordion) Key() string           { return a.offering.Key }
func (a *Accordion) Title() string         { return a.offering.Title }
func (a *Accordion) SequenceLabel() string { return a.offering.SequenceLabel }

// State is the set of expanded accordion keys carried between requests.
// Values are immutable; Toggled returns a new State.
type State struct {
	open map[string]bool
}

// ParseState reads the expanded keys from query values. Keys not in known
// are dropped so stale links cannot expand accordions that do not exist.
func ParseState(q url.Values, known []string) State {
	s := State{open: make(map[string]bool)}
	for _, raw := range q[QueryParam] {
		for _, key := range strings.Split(raw, ",") {
			key = strings.TrimSpace(key)
			if key != "" && slices.Contains(known, key) {
				s.open[key] = true
			}
		}
	}
	return s
}

// Has reports whether key is expanded.
func (s State) Has(key string) bool {
	return s.open[key]
}

// Toggled returns a copy of s with only key flipped.
func (s State) Toggled(key string) State {
	next := State{open: make(map[string]bool, len(s.open)+1)}
	for k := range s.open {
		next.open[k] = true
	}
	if next.open[key] {
		delete(next.open, key)
	} else {
		next.open[key] = true
	}
	return next
}

// Keys returns the expanded keys, sorted.
func (s State) Keys() []string {
	keys := make([]string, 0, len(s.open))
	for k := range s.open {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Query encodes the state as a query string without the leading "?".
// An empty state encodes to "".
func (s State) Query() string {
	q := url.Values{}
	for _, k := range s.Keys() {
		q.Add(QueryParam, k)
	}
	return q.Encode()
}

// CacheKey is a stable identifier for the state.
func (s State) CacheKey() string {
	return strings.Join(s.Keys(), ",")
}

// Build creates one accordion per offering, expanded where the state says so.
func Build(offerings []content.ServiceOffering, s State) []*Accordion {
	out := make([]*Accordion, len(offerings))
	for i, o := range offerings {
		a := New(o)
		if s.Has(o.Key) {
			a.Toggle()
		}
		out[i] = a
	}
	return out
}
