package models

// Position is a real scene position in pixels.
// JSON: { "x": 80, "y": 160 }
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SceneComponent is one placed component as the editor reports it: a type
// from the recognized vocabulary (anything else is dropped before
// compilation), its position, an optional value string, and its ordered
// terminal positions.
type SceneComponent struct {
	Type      string     `json:"type"`
	Position  Position   `json:"position"`
	Value     string     `json:"value,omitempty"`
	Terminals []Position `json:"terminals"`
}

// SceneWire is one routed wire with its two endpoint positions. Each endpoint
// sits on a component terminal, a junction, another wire's endpoint, or a
// bare grid point.
type SceneWire struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// SceneJunction is a multi-way wire meeting point placed by the editor.
type SceneJunction struct {
	Position Position `json:"position"`
}

// Scene is one immutable snapshot of the editor scene. The pipeline reads it
// once per run; the editor serializes "run" actions so snapshots never change
// underneath a run.
type Scene struct {
	GridSpacing float64          `json:"gridSpacing,omitempty"`
	Components  []SceneComponent `json:"components"`
	Wires       []SceneWire      `json:"wires,omitempty"`
	Junctions   []SceneJunction  `json:"junctions,omitempty"`
}
