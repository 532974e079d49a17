package compile

import (
	"fmt"
	"slices"

	"go-circuit-grid/internal/models"
)

// Restructure eliminates every wire from the grid by splicing the peers each
// wire bridged into direct connections, then rewrites the survivors'
// connections from coordinates to entity names. The result contains only
// components and junctions.
//
// The input grid is never modified; callers that want a pre-compilation
// snapshot for diagnostics keep their own reference. Restructure must run
// exactly once per raw grid: its output is name-addressed, so feeding it back
// in would misread peer names as coordinates.
//
// On error the partial netlist built so far is returned alongside it for
// diagnosis.
func Restructure(grid models.Grid) (models.Netlist, error) {
	work := grid.Clone()

	// unmapped scene types never reach the netlist; the mutual-declaration
	// rule prunes any references to them below
	for name, e := range work {
		if e.Kind == models.KindUnknown {
			delete(work, name)
		}
	}

	// Splice wires in sorted name order. Each splice mutates the working grid
	// immediately so that chains of wires collapse correctly within the same
	// pass: a later wire sees the connections its predecessors rewrote.
	for _, wname := range work.Names() {
		w, ok := work[wname]
		if !ok || w.Kind != models.KindWire {
			continue
		}
		peers := work.ValidPeers(w)
		if len(peers) < 2 {
			continue // dangling wire, removed in the deletion pass
		}
		for _, e := range work {
			if e == w || !slices.Contains(peers, e.Coordinate) {
				continue
			}
			e.Connections = splice(e.Connections, w.Coordinate, peers, e.Coordinate)
		}
	}

	for name, e := range work {
		if e.Kind == models.KindWire {
			delete(work, name)
		}
	}

	// splicing a chain can leave one-sided stubs (e.g. references to a
	// deleted dangling wire); recomputing valid peers prunes them
	for _, name := range work.Names() {
		e := work[name]
		e.Connections = work.ValidPeers(e)
	}

	byCoord := make(map[models.Coord]string, len(work))
	for _, name := range work.Names() {
		e := work[name]
		if other, dup := byCoord[e.Coordinate]; dup {
			return nil, fmt.Errorf("entities %q and %q occupy the same coordinate %s", other, name, e.Coordinate)
		}
		byCoord[e.Coordinate] = name
	}

	netlist := models.Netlist{}
	for _, name := range work.Names() {
		e := work[name]
		conns := make([]string, 0, len(e.Connections))
		for _, c := range e.Connections {
			peer, ok := byCoord[c]
			if !ok {
				return netlist, fmt.Errorf("entity %q references coordinate %s with no entity", name, c)
			}
			conns = append(conns, peer)
		}
		netlist[name] = &models.Component{
			Name:        name,
			Kind:        e.Kind,
			Value:       e.Value,
			Connections: conns,
		}
	}
	return netlist, nil
}

// splice replaces every occurrence of wireCoord in conns with the wire's
// other peers, joining the entities the wire bridged directly.
func splice(conns []models.Coord, wireCoord models.Coord, peers []models.Coord, self models.Coord) []models.Coord {
	out := make([]models.Coord, 0, len(conns)+len(peers))
	for _, c := range conns {
		if c != wireCoord {
			out = append(out, c)
			continue
		}
		for _, p := range peers {
			if p != self {
				out = append(out, p)
			}
		}
	}
	return out
}
