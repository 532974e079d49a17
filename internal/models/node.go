package models

// NodeKey is the canonical key of an unordered pair of component names. Both
// sides of a two-terminal connection derive the same key, so the shared
// electrical node resolves identically regardless of which side asks.
type NodeKey struct {
	A string
	B string
}

// PairKey returns the canonical node key for two component names.
// PairKey(a, b) == PairKey(b, a).
func PairKey(a, b string) NodeKey {
	if b < a {
		a, b = b, a
	}
	return NodeKey{A: a, B: b}
}

// String formats the key for the solver boundary, e.g. "1/voltage_source".
func (k NodeKey) String() string {
	return k.A + "/" + k.B
}
