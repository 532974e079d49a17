package compile

import (
	"slices"
	"testing"

	"go-circuit-grid/internal/models"
)

func entity(name string, kind models.EntityKind, coord models.Coord, conns ...models.Coord) *models.Entity {
	return &models.Entity{Name: name, Kind: kind, Coordinate: coord, Connections: conns}
}

func withValue(e *models.Entity, v float64) *models.Entity {
	e.Value = &v
	return e
}

func TestWireSpliceJoinsPeers(t *testing.T) {
	// voltage_source --wire1-- resistor
	grid := models.Grid{
		"voltage_source": withValue(entity("voltage_source", models.KindVoltageSource, models.Coord{X: 0, Y: 0}, models.Coord{X: 1, Y: 0}), 20),
		"wire1":          entity("wire1", models.KindWire, models.Coord{X: 1, Y: 0}, models.Coord{X: 0, Y: 0}, models.Coord{X: 2, Y: 0}),
		"1":              withValue(entity("1", models.KindResistor, models.Coord{X: 2, Y: 0}, models.Coord{X: 1, Y: 0}), 10),
	}

	netlist, err := Restructure(grid)
	if err != nil {
		t.Fatalf("restructure failed: %v", err)
	}

	if _, ok := netlist["wire1"]; ok {
		t.Fatal("wire survived compilation")
	}
	if !slices.Contains(netlist["voltage_source"].Connections, "1") {
		t.Errorf("voltage_source connections = %v, want to contain \"1\"", netlist["voltage_source"].Connections)
	}
	if !slices.Contains(netlist["1"].Connections, "voltage_source") {
		t.Errorf("resistor connections = %v, want to contain \"voltage_source\"", netlist["1"].Connections)
	}
	for name, comp := range netlist {
		if slices.Contains(comp.Connections, "wire1") {
			t.Errorf("entity %q still references the wire by name", name)
		}
	}
}

func TestWireChainCollapses(t *testing.T) {
	// a --wire1--wire2--wire3-- b: splices must propagate within one pass
	grid := models.Grid{
		"a":     entity("a", models.KindVoltageSource, models.Coord{X: 0, Y: 0}, models.Coord{X: 1, Y: 0}),
		"wire1": entity("wire1", models.KindWire, models.Coord{X: 1, Y: 0}, models.Coord{X: 0, Y: 0}, models.Coord{X: 2, Y: 0}),
		"wire2": entity("wire2", models.KindWire, models.Coord{X: 2, Y: 0}, models.Coord{X: 1, Y: 0}, models.Coord{X: 3, Y: 0}),
		"wire3": entity("wire3", models.KindWire, models.Coord{X: 3, Y: 0}, models.Coord{X: 2, Y: 0}, models.Coord{X: 4, Y: 0}),
		"b":     entity("b", models.KindResistor, models.Coord{X: 4, Y: 0}, models.Coord{X: 3, Y: 0}),
	}

	netlist, err := Restructure(grid)
	if err != nil {
		t.Fatalf("restructure failed: %v", err)
	}

	if len(netlist) != 2 {
		t.Fatalf("expected 2 compiled entities, got %v", netlist.Names())
	}
	if got := netlist["a"].Connections; len(got) != 1 || got[0] != "b" {
		t.Errorf("a connections = %v, want [b]", got)
	}
	if got := netlist["b"].Connections; len(got) != 1 || got[0] != "a" {
		t.Errorf("b connections = %v, want [a]", got)
	}
}

func TestDanglingWireRemoved(t *testing.T) {
	// wire1 has one mutual peer; no splice happens but the wire still goes
	grid := models.Grid{
		"1":     entity("1", models.KindResistor, models.Coord{X: 0, Y: 0}, models.Coord{X: 1, Y: 0}),
		"wire1": entity("wire1", models.KindWire, models.Coord{X: 1, Y: 0}, models.Coord{X: 0, Y: 0}, models.Coord{X: 5, Y: 5}),
	}

	netlist, err := Restructure(grid)
	if err != nil {
		t.Fatalf("restructure failed: %v", err)
	}

	if _, ok := netlist["wire1"]; ok {
		t.Fatal("dangling wire survived compilation")
	}
	if got := netlist["1"].Connections; len(got) != 0 {
		t.Errorf("resistor connections = %v, want none after pruning", got)
	}
}

func TestTwoJunctionWireChain(t *testing.T) {
	// node1 --wire1--wire2-- node2, each junction with one extra leg. The
	// wire resolution order is an implementation detail; only connectivity
	// facts are asserted.
	grid := models.Grid{
		"node1":          entity("node1", models.KindJunction, models.Coord{X: 0, Y: 0}, models.Coord{X: 1, Y: 0}, models.Coord{X: 0, Y: 1}),
		"wire1":          entity("wire1", models.KindWire, models.Coord{X: 1, Y: 0}, models.Coord{X: 0, Y: 0}, models.Coord{X: 2, Y: 0}),
		"wire2":          entity("wire2", models.KindWire, models.Coord{X: 2, Y: 0}, models.Coord{X: 1, Y: 0}, models.Coord{X: 3, Y: 0}),
		"node2":          entity("node2", models.KindJunction, models.Coord{X: 3, Y: 0}, models.Coord{X: 2, Y: 0}, models.Coord{X: 3, Y: 1}),
		"wire3":          entity("wire3", models.KindWire, models.Coord{X: 0, Y: 1}, models.Coord{X: 0, Y: 0}, models.Coord{X: 0, Y: 2}),
		"ground1":        entity("ground1", models.KindGround, models.Coord{X: 0, Y: 2}, models.Coord{X: 0, Y: 1}),
		"wire4":          entity("wire4", models.KindWire, models.Coord{X: 3, Y: 1}, models.Coord{X: 3, Y: 0}, models.Coord{X: 3, Y: 2}),
		"voltage_source": withValue(entity("voltage_source", models.KindVoltageSource, models.Coord{X: 3, Y: 2}, models.Coord{X: 3, Y: 1}), 20),
	}

	netlist, err := Restructure(grid)
	if err != nil {
		t.Fatalf("restructure failed: %v", err)
	}

	for _, name := range netlist.Names() {
		if netlist[name].Kind == models.KindWire {
			t.Fatalf("wire %q survived compilation", name)
		}
	}
	if !slices.Contains(netlist["node1"].Connections, "node2") ||
		!slices.Contains(netlist["node2"].Connections, "node1") {
		t.Errorf("junctions not joined: node1=%v node2=%v",
			netlist["node1"].Connections, netlist["node2"].Connections)
	}
	if !slices.Contains(netlist["node1"].Connections, "ground1") {
		t.Errorf("node1 lost its ground leg: %v", netlist["node1"].Connections)
	}
	if !slices.Contains(netlist["node2"].Connections, "voltage_source") {
		t.Errorf("node2 lost its source leg: %v", netlist["node2"].Connections)
	}
}

func TestRestructureDoesNotMutateInput(t *testing.T) {
	grid := models.Grid{
		"a":     entity("a", models.KindVoltageSource, models.Coord{X: 0, Y: 0}, models.Coord{X: 1, Y: 0}),
		"wire1": entity("wire1", models.KindWire, models.Coord{X: 1, Y: 0}, models.Coord{X: 0, Y: 0}, models.Coord{X: 2, Y: 0}),
		"b":     entity("b", models.KindResistor, models.Coord{X: 2, Y: 0}, models.Coord{X: 1, Y: 0}),
	}

	if _, err := Restructure(grid); err != nil {
		t.Fatalf("restructure failed: %v", err)
	}

	if _, ok := grid["wire1"]; !ok {
		t.Error("input grid lost its wire")
	}
	if grid["a"].Connections[0] != (models.Coord{X: 1, Y: 0}) {
		t.Errorf("input connections mutated: %v", grid["a"].Connections)
	}
}

func TestUnknownKindDropped(t *testing.T) {
	grid := models.Grid{
		"current_source_1": entity("current_source_1", models.KindUnknown, models.Coord{X: 9, Y: 9}, models.Coord{X: 0, Y: 0}),
		"1":                entity("1", models.KindResistor, models.Coord{X: 0, Y: 0}, models.Coord{X: 9, Y: 9}),
	}

	netlist, err := Restructure(grid)
	if err != nil {
		t.Fatalf("restructure failed: %v", err)
	}

	if _, ok := netlist["current_source_1"]; ok {
		t.Fatal("unmapped entity survived compilation")
	}
	if got := netlist["1"].Connections; len(got) != 0 {
		t.Errorf("reference to dropped entity not pruned: %v", got)
	}
}

func TestDuplicateCoordinateIsError(t *testing.T) {
	grid := models.Grid{
		"a": entity("a", models.KindResistor, models.Coord{X: 0, Y: 0}),
		"b": entity("b", models.KindResistor, models.Coord{X: 0, Y: 0}),
	}
	if _, err := Restructure(grid); err == nil {
		t.Fatal("expected error for duplicate coordinates")
	}
}
