package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/optimode/contactkit/internal/logging"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	MaxRequestBodyBytes int64
	// RequestTimeout bounds each request. Zero disables it.
	RequestTimeout time.Duration
	// Metrics records request durations. Nil skips it.
	Metrics func(http.Handler) http.Handler
	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
	Logger         *zap.Logger
}

// NewRouter wires the middleware stack and mounts h.
func NewRouter(h *Handler, cfg RouterConfig) chi.Router {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimw.RealIP)
	r.Use(logging.Recoverer(logger))
	r.Use(LimitBodySize(cfg.MaxRequestBodyBytes))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics)
	}
	r.Use(logging.RequestLogger(logger))

	r.NotFound(NotFoundHandler(logger))
	r.MethodNotAllowed(MethodNotAllowedHandler(logger))

	r.Get("/health", h.Health)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/v1/validate", func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(chimw.Timeout(cfg.RequestTimeout))
		}
		r.Post("/", h.Validate)
		r.Post("/batch", h.ValidateBatch)
	})

	return r
}
