package extract

import (
	"slices"

	"go-circuit-grid/internal/models"
)

// Extractor reduces a scene snapshot to a coordinate-keyed grid of entities
// with mutually declared connections. Components connect to the midpoints of
// the wires touching their terminals; wires connect to whatever their
// endpoints resolve to (a component, a junction, or a neighboring wire's
// midpoint); junctions connect to the midpoints of the wires meeting at them.
type Extractor struct{}

// New creates a new extractor
func New() *Extractor {
	return &Extractor{}
}

type wireInfo struct {
	start models.Coord
	end   models.Coord
	mid   models.Coord
}

// Extract builds the grid for one scene snapshot. An empty scene yields an
// empty grid; the caller reports that as "no components found".
func (x *Extractor) Extract(scene *models.Scene) models.Grid {
	spacing := scene.GridSpacing
	if spacing <= 0 {
		spacing = models.DefaultGridSpacing
	}

	grid := models.Grid{}
	naming := NewNamingContext()

	// terminal coordinate -> owning component coordinate, so wire endpoints
	// resolve to components rather than bare terminals
	terminalOwner := map[models.Coord]models.Coord{}
	componentCoords := map[models.Coord]bool{}
	for _, sc := range scene.Components {
		coord := models.CoordAt(sc.Position.X, sc.Position.Y, spacing)
		componentCoords[coord] = true
		for _, t := range sc.Terminals {
			terminalOwner[models.CoordAt(t.X, t.Y, spacing)] = coord
		}
	}

	// a wire's identity is the rounded midpoint of its endpoint coordinates
	wires := make([]wireInfo, 0, len(scene.Wires))
	for _, w := range scene.Wires {
		start := models.CoordAt(w.Start.X, w.Start.Y, spacing)
		end := models.CoordAt(w.End.X, w.End.Y, spacing)
		wires = append(wires, wireInfo{start: start, end: end, mid: models.Midpoint(start, end)})
	}

	// components connect to the wires touching their terminals
	for _, sc := range scene.Components {
		kind := models.KindFromType(sc.Type)
		coord := models.CoordAt(sc.Position.X, sc.Position.Y, spacing)

		var conns []models.Coord
		for _, t := range sc.Terminals {
			tc := models.CoordAt(t.X, t.Y, spacing)
			for _, w := range wires {
				if w.start != tc && w.end != tc {
					continue
				}
				if !slices.Contains(conns, w.mid) {
					conns = append(conns, w.mid)
				}
			}
		}

		var value *float64
		if sc.Value != "" {
			v := models.ParseValue(sc.Value)
			value = &v
		}
		if kind == models.KindLED && value == nil {
			v := float64(models.DefaultLEDOhms)
			value = &v
		}

		name := naming.ComponentName(kind, sc.Type)
		grid[name] = &models.Entity{
			Name:        name,
			Kind:        kind,
			Coordinate:  coord,
			Value:       value,
			Connections: conns,
		}
	}

	// junctions coinciding with a component are redundant routing artifacts
	junctionCoords := map[models.Coord]bool{}
	for _, j := range scene.Junctions {
		coord := models.CoordAt(j.Position.X, j.Position.Y, spacing)
		if componentCoords[coord] {
			continue
		}
		junctionCoords[coord] = true
	}

	seenJunctions := map[models.Coord]bool{}
	for _, j := range scene.Junctions {
		coord := models.CoordAt(j.Position.X, j.Position.Y, spacing)
		if !junctionCoords[coord] || seenJunctions[coord] {
			continue
		}
		seenJunctions[coord] = true // duplicate junction markers collapse to one

		var conns []models.Coord
		for _, w := range wires {
			if w.start != coord && w.end != coord {
				continue
			}
			if w.mid == coord {
				continue
			}
			if !slices.Contains(conns, w.mid) {
				conns = append(conns, w.mid)
			}
		}
		if len(conns) == 0 {
			continue
		}

		name := naming.JunctionName()
		grid[name] = &models.Entity{
			Name:        name,
			Kind:        models.KindJunction,
			Coordinate:  coord,
			Connections: conns,
		}
	}

	// wires last: endpoints resolved to component, junction or neighboring
	// wire coordinates, never bare terminals
	for i, w := range wires {
		name := naming.WireName()
		grid[name] = &models.Entity{
			Name:       name,
			Kind:       models.KindWire,
			Coordinate: w.mid,
			Connections: []models.Coord{
				x.resolveEndpoint(w.start, i, wires, terminalOwner, junctionCoords),
				x.resolveEndpoint(w.end, i, wires, terminalOwner, junctionCoords),
			},
		}
	}

	return grid
}

// resolveEndpoint maps a wire endpoint coordinate to the entity it lands on.
func (x *Extractor) resolveEndpoint(c models.Coord, self int, wires []wireInfo, terminalOwner map[models.Coord]models.Coord, junctionCoords map[models.Coord]bool) models.Coord {
	if owner, ok := terminalOwner[c]; ok {
		return owner
	}
	if junctionCoords[c] {
		return c
	}
	for i, w := range wires {
		if i == self {
			continue
		}
		if w.start == c || w.end == c {
			return w.mid
		}
	}
	return c
}
