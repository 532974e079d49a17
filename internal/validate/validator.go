package validate

import (
	"fmt"

	"go-circuit-grid/internal/models"
)

// Kind enumerates the validation checks.
type Kind string

const (
	MissingSource  Kind = "missing_source"
	MissingGround  Kind = "missing_ground"
	Disconnected   Kind = "disconnected"
	InvalidValue   Kind = "invalid_value"
	UnderConnected Kind = "under_connected"
)

// Issue is one failed check. Fatal issues abort the run before compilation;
// warnings are reported alongside the result and do not block.
type Issue struct {
	Kind    Kind   `json:"kind"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
	Fatal   bool   `json:"fatal"`
}

// Check runs the topology preconditions on the raw, pre-compilation grid.
// It returns the first applicable fatal issue in priority order (missing
// source, missing ground, disconnected component, invalid value) plus any
// warnings. Entities are visited in sorted name order so the reported
// offender is deterministic.
func Check(grid models.Grid) (*Issue, []Issue) {
	if grid.CountKind(models.KindVoltageSource) == 0 {
		return &Issue{
			Kind:    MissingSource,
			Message: "circuit must have at least one voltage source",
			Fatal:   true,
		}, nil
	}

	if grid.CountKind(models.KindGround) == 0 {
		return &Issue{
			Kind:    MissingGround,
			Message: "circuit must have at least one ground connection",
			Fatal:   true,
		}, nil
	}

	names := grid.Names()

	for _, name := range names {
		e := grid[name]
		if !e.Kind.IsComponent() {
			continue
		}
		if len(e.Connections) == 0 {
			return &Issue{
				Kind:    Disconnected,
				Name:    name,
				Message: fmt.Sprintf("component %q is not connected to the circuit", name),
				Fatal:   true,
			}, nil
		}
	}

	for _, name := range names {
		e := grid[name]
		if issue := checkValue(name, e); issue != nil {
			return issue, nil
		}
	}

	var warnings []Issue
	for _, name := range names {
		e := grid[name]
		if e.Kind.TwoTerminal() && len(e.Connections) == 1 {
			// tolerated: the emitter defaults a voltage source's missing
			// terminal to ground
			warnings = append(warnings, Issue{
				Kind:    UnderConnected,
				Name:    name,
				Message: fmt.Sprintf("component %q has only one connection", name),
			})
		}
	}
	return nil, warnings
}

func checkValue(name string, e *models.Entity) *Issue {
	switch e.Kind {
	case models.KindResistor, models.KindSwitch, models.KindLED:
		value := 0.0
		if e.Value != nil {
			value = *e.Value
		}
		if value <= 0 {
			return &Issue{
				Kind:    InvalidValue,
				Name:    name,
				Message: fmt.Sprintf("%s %q has invalid value: %g", e.Kind, name, value),
				Fatal:   true,
			}
		}
	case models.KindVoltageSource:
		if e.Value == nil || *e.Value == 0 {
			return &Issue{
				Kind:    InvalidValue,
				Name:    name,
				Message: fmt.Sprintf("voltage source %q has no value set", name),
				Fatal:   true,
			}
		}
	}
	return nil
}
