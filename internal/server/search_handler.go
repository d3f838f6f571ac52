package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ashatilov/camdict/internal/dictionary"
)

// handleSearch forwards a word lookup to the dictionary backend and
// relays the entry document without touching its structure.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("entry")
	logger := loggerFrom(r.Context())
	logger.Info("looking up word", slog.String("word", word))

	document, err := s.fetcher.Fetch(r.Context(), s.cfg.Backend.Language, word)
	if err != nil {
		var parseErr *dictionary.ParseError
		if errors.As(err, &parseErr) {
			logger.Error("backend document is not valid JSON",
				slog.String("word", word),
				slog.Any("error", err),
			)
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:   "response processing error",
				Details: parseErr.Err.Error(),
			})
			return
		}

		// Missing words and unreachable backends collapse to the same
		// answer; the log keeps them apart.
		var statusErr *dictionary.StatusError
		if errors.As(err, &statusErr) {
			logger.Info("backend answered without an entry",
				slog.String("word", word),
				slog.Int("status_code", statusErr.StatusCode),
			)
		} else {
			logger.Error("backend request failed",
				slog.String("word", word),
				slog.Any("error", err),
			)
		}
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: "word not found or request processing error",
			Word:  word,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document)
}
