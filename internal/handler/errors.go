package handler

import (
	"log/slog"
	"net/http"
)

// serverError logs an unexpected failure and answers with a plain 500.
// Only store and template failures land here — not-found is handled as a
// redirect with a notice, and form input never fails at all.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
