package api

import (
	"net/http"

	"github.com/patrolsync/nibrs/internal/metrics"
)

// SetupRoutes configures all API routes on the provided mux and returns
// the instrumented root handler.
func SetupRoutes(mux *http.ServeMux, handler *Handler, collector *metrics.Collector) http.Handler {
	mux.HandleFunc("POST /api/nibrs/map", handler.MapExtract)
	mux.HandleFunc("POST /api/nibrs/validate", handler.Validate)
	mux.HandleFunc("POST /api/nibrs/xml", handler.BuildXML)
	mux.HandleFunc("POST /api/nibrs/extract", handler.Extract)
	mux.HandleFunc("GET /healthz", handler.Health)
	mux.Handle("GET /metrics", collector.Handler())

	return collector.InstrumentHandler(WithRequestID(mux))
}
