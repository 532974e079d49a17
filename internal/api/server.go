package api

import (
	"log"
	"net/http"

	"go-circuit-grid/internal/engine"
	"go-circuit-grid/internal/models"
)

// Server represents the API server
type Server struct {
	engine *engine.Engine
	parser *models.SceneParser
}

// NewServer creates a new API server
func NewServer() *Server {
	return &Server{
		engine: engine.NewEngine(),
		parser: models.NewSceneParser(),
	}
}

// SetupRoutes sets up the HTTP routes for the API server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Circuit pipeline
	mux.HandleFunc("/api/circuit/simulate", s.corsMiddleware(s.SimulateCircuit))
	mux.HandleFunc("/api/circuit/compile", s.corsMiddleware(s.CompileCircuit))
	mux.HandleFunc("/api/circuit/validate", s.corsMiddleware(s.ValidateCircuit))

	// Health check endpoint
	mux.HandleFunc("/api/health", s.corsMiddleware(s.HealthCheck))

	return mux
}

// corsMiddleware adds CORS headers to allow cross-origin requests
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// StartServer starts the HTTP server on the given port
func (s *Server) StartServer(port string) error {
	mux := s.SetupRoutes()
	log.Printf("Circuit grid server listening on port %s", port)
	return http.ListenAndServe(":"+port, mux)
}
