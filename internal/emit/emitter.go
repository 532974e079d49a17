package emit

import (
	"fmt"
	"strconv"
	"strings"

	"go-circuit-grid/internal/models"
	"go-circuit-grid/internal/solver"
)

// supportingResistorOhms is the resistance of the zero-ohm tie emitted
// between a junction and each adjacent ground; it keeps an otherwise floating
// multi-way node numerically well-posed.
const supportingResistorOhms = 1e-3

// Emitter translates a compiled netlist into solver primitives. Resistors,
// switches and LEDs become resistor primitives; voltage sources become source
// primitives (a single-leg source gets ground as its second terminal);
// junctions are never primitives themselves but earn one supporting resistor
// per adjacent ground.
type Emitter struct{}

// New creates a new emitter
func New() *Emitter {
	return &Emitter{}
}

// Emit walks the netlist in sorted name order, populating the circuit and
// returning a SPICE-style text rendering of the primitives in emission order.
// Components whose connection count is not two are skipped; the validator
// excludes them before a normal run ever gets here.
func (em *Emitter) Emit(netlist models.Netlist, cir solver.Circuit, title string) string {
	var lines []string
	lines = append(lines, "* circuit: "+title)
	supporting := 0

	for _, name := range netlist.Names() {
		comp := netlist[name]
		switch comp.Kind {
		case models.KindJunction:
			for _, peerName := range comp.Connections {
				peer, ok := netlist[peerName]
				if !ok || peer.Kind != models.KindGround {
					continue
				}
				// one supporting resistor per adjacent ground
				rname := fmt.Sprintf("supporting_resistor%d", supporting)
				supporting++
				node := solver.NamedNode(name)
				cir.AddResistor(rname, node, cir.Ground(), supportingResistorOhms)
				lines = append(lines, resistorLine(rname, node, cir.Ground(), supportingResistorOhms))
			}

		case models.KindVoltageSource:
			volts := 0.0
			if comp.Value != nil {
				volts = *comp.Value
			}
			var a, b solver.Node
			switch len(comp.Connections) {
			case 1:
				// the missing return terminal defaults to ground, so the
				// explicit return wire may be omitted
				a = em.nodeFor(netlist, comp, comp.Connections[0], cir)
				b = cir.Ground()
			case 2:
				a = em.nodeFor(netlist, comp, comp.Connections[0], cir)
				b = em.nodeFor(netlist, comp, comp.Connections[1], cir)
			default:
				continue
			}
			cir.AddVoltageSource(name, a, b, volts)
			lines = append(lines, fmt.Sprintf("V%s %s %s %s", name, a.Name(), b.Name(), formatValue(volts)))

		case models.KindResistor, models.KindSwitch, models.KindLED:
			if len(comp.Connections) != 2 {
				continue
			}
			ohms := float64(models.DefaultLEDOhms)
			if comp.Value != nil {
				ohms = *comp.Value
			}
			a := em.nodeFor(netlist, comp, comp.Connections[0], cir)
			b := em.nodeFor(netlist, comp, comp.Connections[1], cir)
			cir.AddResistor(name, a, b, ohms)
			lines = append(lines, resistorLine(name, a, b, ohms))
		}
		// ground entities are pure reference, nothing to emit
	}

	lines = append(lines, ".end")
	return strings.Join(lines, "\n") + "\n"
}

// nodeFor derives the electrical node shared by comp and the named peer:
// ground peers yield the ground sentinel, junction peers act as directly
// named nodes, and component peers yield the canonical pair key. The naming
// is commutative, so both ends of a connection resolve to the same node.
func (em *Emitter) nodeFor(netlist models.Netlist, comp *models.Component, peerName string, cir solver.Circuit) solver.Node {
	peer, ok := netlist[peerName]
	if !ok {
		return solver.NamedNode(peerName)
	}
	switch peer.Kind {
	case models.KindGround:
		return cir.Ground()
	case models.KindJunction:
		return solver.NamedNode(peerName)
	}
	return solver.NamedNode(models.PairKey(comp.Name, peerName).String())
}

func resistorLine(name string, a, b solver.Node, ohms float64) string {
	return fmt.Sprintf("R%s %s %s %s", name, a.Name(), b.Name(), formatValue(ohms))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
