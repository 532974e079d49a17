package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DC is a steady-state operating-point solver. It accumulates primitives and
// solves the modified nodal analysis system A x = z, where x stacks the
// non-ground node voltages followed by the voltage-source branch currents.
// Ground is row/column 0 and is not part of the system.
type DC struct {
	name      string
	nodeIndex map[string]int // node name -> 1-based MNA index; ground is 0
	order     []string       // node names in index order
	resistors []resistorPrimitive
	sources   []sourcePrimitive
}

type resistorPrimitive struct {
	name string
	a, b Node
	ohms float64
}

type sourcePrimitive struct {
	name  string
	a, b  Node
	volts float64
}

// NewDC creates an empty operating-point circuit.
func NewDC(name string) *DC {
	return &DC{
		name:      name,
		nodeIndex: make(map[string]int),
	}
}

// Ground returns the ground sentinel.
func (c *DC) Ground() Node {
	return Ground
}

// AddResistor adds a resistor primitive between two nodes.
func (c *DC) AddResistor(name string, a, b Node, ohms float64) {
	c.index(a)
	c.index(b)
	c.resistors = append(c.resistors, resistorPrimitive{name: name, a: a, b: b, ohms: ohms})
}

// AddVoltageSource adds an independent voltage source primitive; node a is
// the positive terminal.
func (c *DC) AddVoltageSource(name string, a, b Node, volts float64) {
	c.index(a)
	c.index(b)
	c.sources = append(c.sources, sourcePrimitive{name: name, a: a, b: b, volts: volts})
}

func (c *DC) index(n Node) int {
	if n.IsGround() {
		return 0
	}
	if i, ok := c.nodeIndex[n.Name()]; ok {
		return i
	}
	i := len(c.order) + 1
	c.nodeIndex[n.Name()] = i
	c.order = append(c.order, n.Name())
	return i
}

// Solve factorizes the MNA system and returns the voltage at every node,
// keyed by node name. Ground is reported as node "0" at exactly 0 V. A
// singular system (floating subcircuit, shorted source loop) is an error.
func (c *DC) Solve() (map[string]float64, error) {
	n := len(c.order)
	m := len(c.sources)
	if n == 0 && m == 0 {
		return map[string]float64{"0": 0}, nil
	}

	size := n + m
	a := mat.NewDense(size, size, nil)
	z := mat.NewVecDense(size, nil)

	// conductance stamps
	for _, r := range c.resistors {
		if r.ohms <= 0 {
			return nil, fmt.Errorf("resistor %s: non-positive resistance %g", r.name, r.ohms)
		}
		g := 1.0 / r.ohms
		i := c.index(r.a)
		j := c.index(r.b)
		if i > 0 {
			a.Set(i-1, i-1, a.At(i-1, i-1)+g)
		}
		if j > 0 {
			a.Set(j-1, j-1, a.At(j-1, j-1)+g)
		}
		if i > 0 && j > 0 {
			a.Set(i-1, j-1, a.At(i-1, j-1)-g)
			a.Set(j-1, i-1, a.At(j-1, i-1)-g)
		}
	}

	// voltage source branch stamps
	for k, s := range c.sources {
		row := n + k
		i := c.index(s.a)
		j := c.index(s.b)
		if i > 0 {
			a.Set(row, i-1, 1)
			a.Set(i-1, row, 1)
		}
		if j > 0 {
			a.Set(row, j-1, -1)
			a.Set(j-1, row, -1)
		}
		z.SetVec(row, s.volts)
	}

	var lu mat.LU
	lu.Factorize(a)
	x := mat.NewVecDense(size, nil)
	if err := lu.SolveVecTo(x, false, z); err != nil {
		return nil, fmt.Errorf("circuit matrix is singular: %v", err)
	}

	voltages := map[string]float64{"0": 0}
	for idx, name := range c.order {
		voltages[name] = x.AtVec(idx)
	}
	return voltages, nil
}
