package api

import (
	"encoding/json"
	"io"
	"net/http"

	"go-circuit-grid/internal/compile"
	"go-circuit-grid/internal/models"
	"go-circuit-grid/internal/validate"
)

// Response structures

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CompileResponse carries the wire-free netlist preview for the designer.
type CompileResponse struct {
	Netlist     models.Netlist `json:"netlist"`
	NetlistText string         `json:"netlistText"`
}

// ValidateResponse lists the validator's findings on the raw grid.
type ValidateResponse struct {
	Valid  bool             `json:"valid"`
	Issues []validate.Issue `json:"issues"`
}

// Helper functions

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err string, message string) {
	s.writeJSON(w, status, ErrorResponse{
		Error:   err,
		Message: message,
	})
}

// readScene decodes and schema-validates the request body as a scene
// snapshot, writing the error response itself on failure.
func (s *Server) readScene(w http.ResponseWriter, r *http.Request) (*models.Scene, bool) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only POST method is allowed")
		return nil, false
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "read_error", "Failed to read request body: "+err.Error())
		return nil, false
	}
	scene, err := s.parser.ParseScene(data)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_scene", "Failed to parse scene: "+err.Error())
		return nil, false
	}
	return scene, true
}

// API Handlers

// SimulateCircuit runs the full pipeline on a scene snapshot;
// POST /api/circuit/simulate. The response is the run result: on success it
// carries node voltages, the compiled netlist and its text rendering; on
// failure a structured error with kind, message and diagnostic details.
func (s *Server) SimulateCircuit(w http.ResponseWriter, r *http.Request) {
	scene, ok := s.readScene(w, r)
	if !ok {
		return
	}

	result := s.engine.Run(scene)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, result)
}

// CompileCircuit compiles a scene to its wire-free netlist without solving;
// POST /api/circuit/compile. Used by the designer's netlist preview panel.
func (s *Server) CompileCircuit(w http.ResponseWriter, r *http.Request) {
	scene, ok := s.readScene(w, r)
	if !ok {
		return
	}

	grid := s.engine.Extract(scene)
	if len(grid) == 0 {
		s.writeError(w, http.StatusUnprocessableEntity, "extraction_empty", "No components found in circuit")
		return
	}

	netlist, err := compile.Restructure(grid)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, "compilation_error", "Failed to compile circuit: "+err.Error())
		return
	}

	text := s.engine.RenderNetlist(netlist)
	s.writeJSON(w, http.StatusOK, CompileResponse{
		Netlist:     netlist,
		NetlistText: text,
	})
}

// ValidateCircuit reports the validator's findings for a scene;
// POST /api/circuit/validate. Fatal issues and warnings are returned
// together; valid means no fatal issue.
func (s *Server) ValidateCircuit(w http.ResponseWriter, r *http.Request) {
	scene, ok := s.readScene(w, r)
	if !ok {
		return
	}

	grid := s.engine.Extract(scene)
	if len(grid) == 0 {
		s.writeJSON(w, http.StatusOK, ValidateResponse{
			Valid: false,
			Issues: []validate.Issue{{
				Kind:    "extraction_empty",
				Message: "no components found",
				Fatal:   true,
			}},
		})
		return
	}

	fatal, warnings := validate.Check(grid)
	issues := []validate.Issue{}
	if fatal != nil {
		issues = append(issues, *fatal)
	}
	issues = append(issues, warnings...)

	s.writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:  fatal == nil,
		Issues: issues,
	})
}

// HealthCheck returns the server status; GET /api/health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only GET method is allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
