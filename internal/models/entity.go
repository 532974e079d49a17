package models

import "fmt"

// EntityKind tags what a grid entity is. Wires and junctions are routing
// entities; everything else is an electrical component.
type EntityKind string

const (
	KindResistor      EntityKind = "resistor"
	KindVoltageSource EntityKind = "voltage_source"
	KindGround        EntityKind = "ground"
	KindSwitch        EntityKind = "switch"
	KindLED           EntityKind = "led"
	KindWire          EntityKind = "wire"
	KindJunction      EntityKind = "junction"
	KindUnknown       EntityKind = "unknown"
)

// KindFromType maps a scene component type string to an entity kind.
// Unrecognized types map to KindUnknown: they are extracted but dropped
// before compilation.
func KindFromType(t string) EntityKind {
	switch EntityKind(t) {
	case KindResistor, KindVoltageSource, KindGround, KindSwitch, KindLED:
		return EntityKind(t)
	}
	return KindUnknown
}

// IsComponent reports whether the kind is an electrical component, as opposed
// to a routing entity or an unmapped scene type.
func (k EntityKind) IsComponent() bool {
	switch k {
	case KindResistor, KindVoltageSource, KindGround, KindSwitch, KindLED:
		return true
	}
	return false
}

// TwoTerminal reports whether the kind expects exactly two live connections.
func (k EntityKind) TwoTerminal() bool {
	switch k {
	case KindResistor, KindVoltageSource, KindSwitch, KindLED:
		return true
	}
	return false
}

// Entity is one placed item in the spatial model: a component, a wire, or a
// junction. Connections list the grid coordinates of declared peers; a
// connection is live only when both sides declare it (mutual-declaration
// rule).
type Entity struct {
	Name        string     `json:"-"`
	Kind        EntityKind `json:"type"`
	Coordinate  Coord      `json:"coordinate"`
	Value       *float64   `json:"value,omitempty"`
	Connections []Coord    `json:"connections"`
}

// ConnectsTo reports whether the entity declares a connection to the given
// coordinate.
func (e *Entity) ConnectsTo(c Coord) bool {
	for _, conn := range e.Connections {
		if conn == c {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the entity.
func (e *Entity) Clone() *Entity {
	clone := &Entity{
		Name:       e.Name,
		Kind:       e.Kind,
		Coordinate: e.Coordinate,
	}
	if e.Value != nil {
		v := *e.Value
		clone.Value = &v
	}
	if e.Connections != nil {
		clone.Connections = make([]Coord, len(e.Connections))
		copy(clone.Connections, e.Connections)
	}
	return clone
}

// String returns a string representation of the entity
func (e *Entity) String() string {
	return fmt.Sprintf("Entity{Name: %s, Kind: %s, Coordinate: %s}", e.Name, e.Kind, e.Coordinate)
}
