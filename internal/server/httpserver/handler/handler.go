package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/yndnr/mudb-go/internal/telemetry/logger"
)

// HeaderRequestID carries the request ID on requests and responses.
const HeaderRequestID = "X-Request-ID"

// Stats is the view of the store the status endpoint reports.
type Stats interface {
	Len() int
	Shards() int
	ShardKeys() []int
}

// ReadyFunc reports whether the RESP listener is accepting connections.
type ReadyFunc func() bool

// Handler serves the admin endpoints.
type Handler struct {
	stats   Stats
	ready   ReadyFunc
	logger  logger.Logger
	started time.Time
	mux     *http.ServeMux
}

// New creates a Handler. ready may be nil, in which case /ready always
// succeeds.
func New(stats Stats, ready ReadyFunc, l logger.Logger) *Handler {
	if ready == nil {
		ready = func() bool { return true }
	}
	if l == nil {
		l = logger.Default()
	}
	h := &Handler{
		stats:   stats,
		ready:   ready,
		logger:  l,
		started: time.Now(),
		mux:     http.NewServeMux(),
	}
	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)
	h.mux.HandleFunc("GET /admin/v1/status/summary", h.handleStatus)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response",
			"path", r.URL.Path,
			"error", err,
		)
	}
}

func requestID(r *http.Request) string {
	return r.Header.Get(HeaderRequestID)
}
