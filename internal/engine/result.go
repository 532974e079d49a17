package engine

import (
	"go-circuit-grid/internal/models"
	"go-circuit-grid/internal/validate"
)

// ErrorKind classifies why a run failed.
type ErrorKind string

const (
	ErrExtractionEmpty ErrorKind = "extraction_empty"
	ErrValidation      ErrorKind = "validation"
	ErrCompilation     ErrorKind = "compilation"
	ErrSolver          ErrorKind = "solver"
)

// RunError is a terminal failure for one run. Nothing is retried; a run
// either fully succeeds or fully fails.
type RunError struct {
	Kind    ErrorKind         `json:"kind"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *RunError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// Result is the outcome of one simulation run.
type Result struct {
	Success      bool               `json:"success"`
	NodeVoltages map[string]float64 `json:"nodeVoltages,omitempty"`
	Netlist      models.Netlist     `json:"netlist,omitempty"`
	NetlistText  string             `json:"netlistText,omitempty"`
	Warnings     []validate.Issue   `json:"warnings,omitempty"`
	Err          *RunError          `json:"error,omitempty"`
}
