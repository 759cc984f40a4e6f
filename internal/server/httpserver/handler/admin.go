package handler

import (
	"net/http"
	"time"

	"github.com/yndnr/mudb-go/internal/infra/buildinfo"
)

// handleStatus handles GET /admin/v1/status/summary.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	info := buildinfo.Get()
	h.writeJSON(w, r, http.StatusOK, NewResponse(requestID(r), StatusSummary{
		Keys:      h.stats.Len(),
		Shards:    h.stats.Shards(),
		ShardKeys: h.stats.ShardKeys(),
		Version:   info.Version,
		Commit:    info.Commit,
		GoVersion: info.GoVersion,
		Uptime:    time.Since(h.started).Round(time.Second).String(),
	}))
}
