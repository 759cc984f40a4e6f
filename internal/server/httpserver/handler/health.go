package handler

import (
	"net/http"
	"time"
)

// handleHealth handles GET /health.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, NewResponse(requestID(r), map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}))
}

// handleReady handles GET /ready.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if !h.ready() {
		h.writeJSON(w, r, http.StatusServiceUnavailable,
			NewErrorResponse(requestID(r), "NOT_READY", "listener is not accepting connections"))
		return
	}
	h.writeJSON(w, r, http.StatusOK, NewResponse(requestID(r), map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}))
}
