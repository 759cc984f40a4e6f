package httpserver

import (
	"net/http"

	"github.com/yndnr/mudb-go/internal/server/httpserver/handler"
	"github.com/yndnr/mudb-go/internal/telemetry/logger"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Stats backs the status summary endpoint.
	Stats handler.Stats

	// Ready reports listener readiness for /ready.
	Ready handler.ReadyFunc

	// Metrics serves /metrics. Nil leaves the route unregistered.
	Metrics http.Handler

	// Logger for request logging.
	Logger logger.Logger
}

// NewRouter creates the admin router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	l := cfg.Logger
	if l == nil {
		l = logger.Default()
	}

	h := handler.New(cfg.Stats, cfg.Ready, l)
	common := []Middleware{RequestID(), Recover(l), AccessLog(l)}

	mux := http.NewServeMux()
	mux.Handle("GET /health", Chain(h, common...))
	mux.Handle("GET /ready", Chain(h, common...))
	mux.Handle("GET /admin/v1/", Chain(h, common...))
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics, Recover(l)))
	}
	return mux
}
