package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"vendite/internal/core"
)

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeQueryError maps core error types onto HTTP statuses and records
// the failure. Validation problems are the caller's to fix, a missing
// customer is a 404, and integrity mismatches are server-side data
// corruption.
func (s *Server) writeQueryError(w http.ResponseWriter, queryName string, err error) {
	var (
		status = http.StatusInternalServerError
		kind   = "internal"
	)

	var validationErr *core.ValidationError
	var notFoundErr *core.NotFoundError
	var integrityErr *core.IntegrityError
	switch {
	case errors.As(err, &validationErr):
		status, kind = http.StatusBadRequest, "validation"
	case errors.As(err, &notFoundErr):
		status, kind = http.StatusNotFound, "not_found"
	case errors.As(err, &integrityErr):
		status, kind = http.StatusInternalServerError, "integrity"
	}

	s.metrics.QueryErrorsTotal.WithLabelValues(queryName, kind).Inc()
	if status >= http.StatusInternalServerError {
		slog.Error("Query failed", "query", queryName, "kind", kind, "error", err)
	}

	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.started).String(),
	})
}

// handleReady performs readiness check with a data source round trip
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]string)

	if _, err := s.source.Customers(ctx); err != nil {
		checks["datasource"] = "failed: " + err.Error()
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["datasource"] = "ok"
	}

	s.writeJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}
