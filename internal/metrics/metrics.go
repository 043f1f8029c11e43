package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes Prometheus metrics for inbound HTTP requests and the
// mapping pipeline.
type Collector struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	mappingsTotal   *prometheus.CounterVec
	validationTotal *prometheus.CounterVec
	xmlBuildsTotal  prometheus.Counter
}

// NewCollector constructs a collector with default histograms/counters.
func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nibrs",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution for inbound HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nibrs",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of inbound HTTP requests.",
	}, []string{"method", "path", "status"})

	mappingsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nibrs",
		Subsystem: "pipeline",
		Name:      "mappings_total",
		Help:      "Total mapping attempts by outcome.",
	}, []string{"outcome"})

	validationTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nibrs",
		Subsystem: "pipeline",
		Name:      "validation_failures_total",
		Help:      "Total validation failures by layer.",
	}, []string{"layer"})

	xmlBuildsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nibrs",
		Subsystem: "pipeline",
		Name:      "xml_builds_total",
		Help:      "Total successful XML serializations.",
	})

	collectors := []prometheus.Collector{
		requestDuration, requestTotal, mappingsTotal, validationTotal, xmlBuildsTotal,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return &Collector{
		registry:        registry,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		mappingsTotal:   mappingsTotal,
		validationTotal: validationTotal,
		xmlBuildsTotal:  xmlBuildsTotal,
	}, nil
}

// Handler returns an HTTP handler for exposing Prometheus metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordMapping counts one mapping attempt by outcome ("ok" or "failed").
func (c *Collector) RecordMapping(outcome string) {
	c.mappingsTotal.WithLabelValues(outcome).Inc()
}

// RecordValidationFailure counts one validation failure by layer.
func (c *Collector) RecordValidationFailure(layer string) {
	c.validationTotal.WithLabelValues(layer).Inc()
}

// RecordXMLBuild counts one successful serialization.
func (c *Collector) RecordXMLBuild() {
	c.xmlBuildsTotal.Inc()
}

// InstrumentHandler wraps the provided handler to record HTTP metrics.
func (c *Collector) InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.status)
		path := r.URL.Path

		c.requestTotal.WithLabelValues(r.Method, path, status).Inc()
		c.requestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
