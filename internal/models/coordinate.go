package models

import (
	"fmt"
	"math"
)

// DefaultGridSpacing is the grid spacing assumed when a scene does not
// declare one, in scene units (pixels).
const DefaultGridSpacing = 40.0

// Coord is an integer grid coordinate: the real scene position divided by the
// grid spacing, rounded to nearest. Compared by equality.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CoordAt converts a real scene position to its grid coordinate.
func CoordAt(x, y, spacing float64) Coord {
	return Coord{
		X: int(math.Round(x / spacing)),
		Y: int(math.Round(y / spacing)),
	}
}

// Midpoint returns the rounded midpoint of two grid coordinates. A wire's own
// identity is the midpoint of its endpoints, distinct from anything it
// touches.
func Midpoint(a, b Coord) Coord {
	return Coord{
		X: int(math.Round(float64(a.X+b.X) / 2.0)),
		Y: int(math.Round(float64(a.Y+b.Y) / 2.0)),
	}
}

// String returns a string representation of the coordinate
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
