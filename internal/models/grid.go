package models

import (
	"slices"
	"sort"
)

// Grid is the coordinate-keyed spatial model produced by extraction, keyed by
// entity name. It is rebuilt from a scene snapshot at the start of every run
// and discarded at the end; nothing is cached across runs.
type Grid map[string]*Entity

// Clone creates a deep copy of the grid.
func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for name, e := range g {
		clone[name] = e.Clone()
	}
	return clone
}

// Names returns the entity names in sorted order.
func (g Grid) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// At returns the entity occupying the given coordinate.
func (g Grid) At(c Coord) (*Entity, bool) {
	for _, e := range g {
		if e.Coordinate == c {
			return e, true
		}
	}
	return nil, false
}

// CountKind returns the number of entities of the given kind.
func (g Grid) CountKind(k EntityKind) int {
	count := 0
	for _, e := range g {
		if e.Kind == k {
			count++
		}
	}
	return count
}

// ValidPeers returns the coordinates the entity lists that also list it back,
// deduplicated in declaration order. One-sided references are stale and
// excluded (mutual-declaration rule).
func (g Grid) ValidPeers(e *Entity) []Coord {
	peers := []Coord{}
	for _, c := range e.Connections {
		other, ok := g.At(c)
		if !ok || other == e {
			continue
		}
		if !other.ConnectsTo(e.Coordinate) {
			continue
		}
		if !slices.Contains(peers, c) {
			peers = append(peers, c)
		}
	}
	return peers
}
