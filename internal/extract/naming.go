package extract

import (
	"fmt"
	"strconv"
	"strings"

	"go-circuit-grid/internal/models"
)

// NamingContext issues the per-kind sequential names used by one extraction
// run. Resistors are named "1", "2", ...; the first voltage source is
// "voltage_source" and later ones "voltage_source2", ...; everything else is
// kind plus counter. A fresh context per run keeps extraction safe to invoke
// repeatedly.
type NamingContext struct {
	counters map[string]int
}

// NewNamingContext creates an empty naming context.
func NewNamingContext() *NamingContext {
	return &NamingContext{counters: make(map[string]int)}
}

func (nc *NamingContext) next(key string) int {
	nc.counters[key]++
	return nc.counters[key]
}

// ComponentName generates the name for a component of the given kind.
// sceneType is the raw scene type string, used for unmapped kinds.
func (nc *NamingContext) ComponentName(kind models.EntityKind, sceneType string) string {
	switch kind {
	case models.KindResistor:
		return strconv.Itoa(nc.next("resistor"))
	case models.KindVoltageSource:
		n := nc.next("voltage_source")
		if n == 1 {
			return "voltage_source"
		}
		return fmt.Sprintf("voltage_source%d", n)
	case models.KindGround:
		return fmt.Sprintf("ground%d", nc.next("ground"))
	case models.KindSwitch:
		return fmt.Sprintf("switch%d", nc.next("switch"))
	case models.KindLED:
		return fmt.Sprintf("led%d", nc.next("led"))
	}
	key := strings.ToLower(sceneType)
	return fmt.Sprintf("%s_%d", key, nc.next(key))
}

// JunctionName generates the name for a junction ("node1", "node2", ...).
func (nc *NamingContext) JunctionName() string {
	return fmt.Sprintf("node%d", nc.next("junction"))
}

// WireName generates the name for a wire ("wire1", "wire2", ...).
func (nc *NamingContext) WireName() string {
	return fmt.Sprintf("wire%d", nc.next("wire"))
}
