package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ashatilov/camdict/internal/dictionary"
)

// handleDictionary serves a dictionary entry scraped from the upstream
// dictionary site.
func (s *Server) handleDictionary(w http.ResponseWriter, r *http.Request) {
	language := r.PathValue("language")
	word := r.PathValue("word")
	logger := loggerFrom(r.Context())

	entry, err := s.provider.Lookup(r.Context(), language, word)
	if err != nil {
		if errors.Is(err, dictionary.ErrNotFound) {
			logger.Info("no entry for word",
				slog.String("word", word),
				slog.String("language", language),
			)
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "word not found"})
			return
		}

		logger.Error("dictionary lookup failed",
			slog.String("word", word),
			slog.String("language", language),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, entry)
}
