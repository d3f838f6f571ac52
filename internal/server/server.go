// Package server provides the HTTP surface of the camdict service: the
// dictionary API routes and the search proxy in front of them.
package server

import (
	"log/slog"
	"net/http"

	"github.com/ashatilov/camdict/internal/config"
	"github.com/ashatilov/camdict/internal/dictionary"
)

// Server bundles the HTTP handlers of the camdict service.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	provider dictionary.Provider
	fetcher  dictionary.Fetcher
}

func New(cfg *config.Config, logger *slog.Logger, provider dictionary.Provider, fetcher dictionary.Fetcher) *Server {
	return &Server{
		cfg:      cfg,
		logger:   logger,
		provider: provider,
		fetcher:  fetcher,
	}
}

// Handler builds the route table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /api/dictionary/{language}/{word}", s.handleDictionary)
	mux.HandleFunc("GET /search/{entry}", s.handleSearch)
	mux.HandleFunc("/", s.handleNotFound)

	return chain(
		requestID,
		requestLogger(s.logger),
		recoverPanic(s.logger),
		cors(s.cfg.Server.CORS.AllowedOrigins),
	)(mux)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Service: "camdict", Status: "ok"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}
