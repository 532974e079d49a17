package engine

import (
	"encoding/json"

	"go-circuit-grid/internal/compile"
	"go-circuit-grid/internal/emit"
	"go-circuit-grid/internal/extract"
	"go-circuit-grid/internal/models"
	"go-circuit-grid/internal/solver"
	"go-circuit-grid/internal/validate"
)

const circuitTitle = "GridCircuit"

// Engine runs the extract -> validate -> compile -> emit -> solve pipeline.
// One synchronous pass per "run simulation" action; no state survives between
// runs, so a single engine value can serve any number of sequential runs.
type Engine struct {
	extractor *extract.Extractor
	emitter   *emit.Emitter
}

// NewEngine creates a new simulation engine
func NewEngine() *Engine {
	return &Engine{
		extractor: extract.New(),
		emitter:   emit.New(),
	}
}

// Extract reduces a scene snapshot to its raw grid without running the rest
// of the pipeline.
func (e *Engine) Extract(scene *models.Scene) models.Grid {
	return e.extractor.Extract(scene)
}

// RenderNetlist emits the netlist into a throwaway circuit and returns only
// the text rendering, for preview endpoints that do not solve.
func (e *Engine) RenderNetlist(netlist models.Netlist) string {
	return e.emitter.Emit(netlist, solver.NewDC(circuitTitle), circuitTitle)
}

// Run executes the whole pipeline on one scene snapshot.
func (e *Engine) Run(scene *models.Scene) *Result {
	return e.RunGrid(e.extractor.Extract(scene))
}

// RunGrid executes the pipeline on an already extracted raw grid. The grid is
// not modified; compilation works on its own copy.
func (e *Engine) RunGrid(grid models.Grid) *Result {
	if len(grid) == 0 {
		return failed(ErrExtractionEmpty, "no components found", nil)
	}

	fatal, warnings := validate.Check(grid)
	if fatal != nil {
		details := map[string]string{"check": string(fatal.Kind)}
		if fatal.Name != "" {
			details["name"] = fatal.Name
		}
		result := failed(ErrValidation, fatal.Message, details)
		result.Warnings = warnings
		return result
	}

	netlist, err := compile.Restructure(grid)
	if err != nil {
		details := map[string]string{
			"originalGrid": snapshotJSON(grid),
		}
		if netlist != nil {
			details["compiledNetlist"] = snapshotJSON(netlist)
		}
		result := failed(ErrCompilation, err.Error(), details)
		result.Warnings = warnings
		return result
	}

	circuit := solver.NewDC(circuitTitle)
	text := e.emitter.Emit(netlist, circuit, circuitTitle)

	voltages, err := circuit.Solve()
	if err != nil {
		result := failed(ErrSolver, err.Error(), map[string]string{"netlist": text})
		result.Warnings = warnings
		return result
	}

	return &Result{
		Success:      true,
		NodeVoltages: voltages,
		Netlist:      netlist,
		NetlistText:  text,
		Warnings:     warnings,
	}
}

func failed(kind ErrorKind, message string, details map[string]string) *Result {
	return &Result{
		Success: false,
		Err: &RunError{
			Kind:    kind,
			Message: message,
			Details: details,
		},
	}
}

func snapshotJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
