package models

import "sort"

// Component is a compiled circuit element. Connections reference peers by
// name, never by coordinate.
type Component struct {
	Name        string     `json:"name"`
	Kind        EntityKind `json:"type"`
	Value       *float64   `json:"value,omitempty"`
	Connections []string   `json:"connections"`
}

// Netlist is the compiled, wire-free component graph keyed by name, ready for
// solver emission. It contains only components and junctions; wires never
// survive compilation.
type Netlist map[string]*Component

// Names returns the component names in sorted order.
func (n Netlist) Names() []string {
	names := make([]string, 0, len(n))
	for name := range n {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
