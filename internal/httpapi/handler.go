// Package httpapi serves the validator over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/optimode/contactkit"
)

// Service is the validator surface the handlers use.
// *contactkit.Validator implements it.
type Service interface {
	Validate(ctx context.Context, req contactkit.Request) (contactkit.Result, error)
	ValidateMany(ctx context.Context, reqs []contactkit.Request, opts ...contactkit.ConcurrencyOptions) ([]contactkit.Result, error)
	Ping(ctx context.Context) error
}

// LocaleMatcher picks a supported locale for an Accept-Language header.
type LocaleMatcher interface {
	Match(acceptLanguage string) string
}

// BatchRequest is the body of POST /v1/validate/batch.
type BatchRequest struct {
	Items []contactkit.Request `json:"items"`
}

// BatchResponse is the reply of POST /v1/validate/batch.
type BatchResponse struct {
	Results []contactkit.Result `json:"results"`
}

// Handler holds the validation endpoints.
type Handler struct {
	svc          Service
	locales      LocaleMatcher
	maxBatchSize int
	workers      int
	logger       *zap.Logger
}

// HandlerConfig configures NewHandler.
type HandlerConfig struct {
	// MaxBatchSize caps items per batch. Default: 100
	MaxBatchSize int
	// Workers bounds concurrency within one batch. Default: 5
	Workers int
	// Locales resolves Accept-Language. Nil ignores the header.
	Locales LocaleMatcher
	Logger  *zap.Logger
}

// NewHandler creates the handlers for svc.
func NewHandler(svc Service, cfg HandlerConfig) *Handler {
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = 100
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 5
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Handler{
		svc:          svc,
		locales:      cfg.Locales,
		maxBatchSize: cfg.MaxBatchSize,
		workers:      cfg.Workers,
		logger:       cfg.Logger,
	}
}

// Validate handles POST /v1/validate.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req contactkit.Request
	if err := BindJSON(r, &req); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	h.applyLocale(r, &req)

	res, err := h.svc.Validate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// ValidateBatch handles POST /v1/validate/batch.
func (h *Handler) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := BindJSON(r, &req); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if len(req.Items) > h.maxBatchSize {
		JSONError(w, http.StatusBadRequest, "invalid_request", fmt.Sprintf("batch exceeds the maximum of %d items", h.maxBatchSize))
		return
	}
	for i := range req.Items {
		h.applyLocale(r, &req.Items[i])
	}

	results, err := h.svc.ValidateMany(r.Context(), req.Items, contactkit.ConcurrencyOptions{Workers: h.workers})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, BatchResponse{Results: results})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		JSONError(w, http.StatusServiceUnavailable, "unavailable", "cache backend unreachable")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// applyLocale fills an empty locale from Accept-Language.
func (h *Handler) applyLocale(r *http.Request, req *contactkit.Request) {
	if req.Locale != "" || h.locales == nil {
		return
	}
	if al := r.Header.Get("Accept-Language"); al != "" {
		req.Locale = h.locales.Match(al)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, contactkit.ErrUnknownKind), errors.Is(err, contactkit.ErrEmptyBatch):
		JSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		JSONError(w, http.StatusGatewayTimeout, "timeout", "validation did not finish in time")
	case errors.Is(err, context.Canceled):
		// client went away
	default:
		h.logger.Error("validation failed", zap.String("path", r.URL.Path), zap.Error(err))
		JSONError(w, http.StatusInternalServerError, "internal_error", "validation could not be performed")
	}
}
