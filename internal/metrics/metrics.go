// Package metrics exposes Prometheus metrics for the HTTP service and the
// validator.
package metrics

import (
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/optimode/contactkit"
)

// maxPathLabelLength bounds the path label.
const maxPathLabelLength = 256

// Metrics owns a registry with the runtime collectors and the service
// metrics. It implements contactkit.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	reqDuration        *prometheus.HistogramVec
	validations        *prometheus.CounterVec
	validationDuration *prometheus.HistogramVec
	cacheLookups       *prometheus.CounterVec
}

var _ contactkit.Recorder = (*Metrics)(nil)

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reqDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: []float64{0.01, 0.1, 0.3, 1.2, 5},
			},
			[]string{"path", "method", "status"},
		),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contactkit_validations_total",
				Help: "Validations by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		validationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "contactkit_validation_duration_seconds",
				Help: "Duration of single validations.",
				// SMTP probes dominate the tail
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"kind"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contactkit_cache_lookups_total",
				Help: "Phone result cache lookups by result.",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.reqDuration,
		m.validations,
		m.validationDuration,
		m.cacheLookups,
	)
	return m
}

// ObserveValidation counts a finished validation and records its duration.
func (m *Metrics) ObserveValidation(kind contactkit.Kind, outcome contactkit.Outcome, d time.Duration) {
	m.validations.WithLabelValues(string(kind), string(outcome)).Inc()
	m.validationDuration.WithLabelValues(string(kind)).Observe(d.Seconds())
}

// ObserveCacheLookup counts a phone cache hit or miss.
func (m *Metrics) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// HTTPMetrics records request durations labeled by chi route pattern,
// method and status.
func (m *Metrics) HTTPMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		protoMajor := r.ProtoMajor
		if protoMajor < 1 {
			protoMajor = 1
		}
		ww := middleware.NewWrapResponseWriter(w, protoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		if status < 100 || status > 599 {
			status = http.StatusInternalServerError
		}

		// label by route pattern, e.g. "/items/{id}"
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		if len(path) > maxPathLabelLength {
			path = truncateUTF8(path, maxPathLabelLength-3) + "..."
		}

		m.reqDuration.WithLabelValues(path, r.Method, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// truncateUTF8 cuts s to at most maxBytes without splitting a rune.
func truncateUTF8(s string, maxBytes int) string {
	if maxBytes <= 0 {
		return ""
	}
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}
