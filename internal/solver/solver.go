package solver

// Node identifies an electrical node: either the ground sentinel or a named
// node. The zero value is an unnamed node; use Ground or NamedNode.
type Node struct {
	name   string
	ground bool
}

// Ground is the solver's ground sentinel. It is a distinct value, not a name.
var Ground = Node{ground: true}

// NamedNode returns the node with the given name.
func NamedNode(name string) Node {
	return Node{name: name}
}

// IsGround reports whether the node is the ground sentinel.
func (n Node) IsGround() bool {
	return n.ground
}

// Name returns the node's name; ground is rendered as "0".
func (n Node) Name() string {
	if n.ground {
		return "0"
	}
	return n.name
}

// Circuit is the primitive sink the emitter populates. Implementations
// accumulate primitives; how (or whether) they are solved is up to them.
type Circuit interface {
	AddResistor(name string, a, b Node, ohms float64)
	AddVoltageSource(name string, a, b Node, volts float64)
	Ground() Node
}
