package telemetry

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusProvider supplies the live fields served at GET /status;
// cmd/ergmnet's runStatus adapter implements this over a RunContext.
type StatusProvider interface {
	StatusSnapshot() StatusSnapshot
}

// StatusSnapshot is the JSON body served at /status.
type StatusSnapshot struct {
	Iteration      int     `json:"iteration"`
	Proposed       int     `json:"proposed"`
	Accepted       int     `json:"accepted"`
	AcceptanceRate float64 `json:"acceptance_rate"`
	Scheme         string  `json:"scheme"`
}

// NewRouter builds the chi router serving /status (JSON snapshot from
// provider) and /metrics (Prometheus exposition from reg), grounded on the
// teacher pack's chi usage in thebtf-engram's HTTP layer, generalized from
// a REST API surface to a two-route diagnostics server.
func NewRouter(provider StatusProvider, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(provider.StatusSnapshot())
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}
