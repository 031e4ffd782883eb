// Package api exposes the HTTP interface for the insights service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brandsight/shopify-insights/internal/config"
	"github.com/brandsight/shopify-insights/internal/insights"
	"github.com/brandsight/shopify-insights/internal/metrics"
)

// InsightsService runs one brand-context extraction per call.
type InsightsService interface {
	BrandContext(ctx context.Context, websiteURL string) (*insights.BrandContext, error)
}

// Server wires HTTP handlers to the extraction service.
type Server struct {
	router  chi.Router
	service InsightsService
	logger  *zap.Logger
	cfg     config.Config
}

// NewServer constructs a Server with middleware and routes.
func NewServer(service InsightsService, logger *zap.Logger, cfg config.Config) *Server {
	metrics.Init()
	s := &Server{
		service: service,
		logger:  logger,
		cfg:     cfg,
	}
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(recoverMiddleware(logger))
	r.Use(corsMiddleware(cfg.Server.CORSOrigins))
	r.Use(metrics.Middleware)
	r.Use(timeoutMiddleware(time.Duration(cfg.Server.TimeoutSeconds) * time.Second))

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/insights", s.getInsights)
	})

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(s.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	// The scraper has no downstream dependencies to probe.
	writeJSON(s.logger, w, http.StatusOK, map[string]string{"status": "ready"})
}

type insightsRequest struct {
	WebsiteURL string `json:"website_url"`
}

func (s *Server) getInsights(w http.ResponseWriter, r *http.Request) {
	var req insightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(s.logger, w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if strings.TrimSpace(req.WebsiteURL) == "" {
		writeDetail(s.logger, w, http.StatusUnprocessableEntity, "website_url is required")
		return
	}

	doc, err := s.service.BrandContext(r.Context(), req.WebsiteURL)
	if err != nil {
		s.writeFailure(w, req.WebsiteURL, err)
		return
	}
	writeJSON(s.logger, w, http.StatusOK, doc)
}

// writeFailure maps the core's typed failures to HTTP statuses:
// unreachable site 401, non-Shopify site 400, everything else 500.
func (s *Server) writeFailure(w http.ResponseWriter, websiteURL string, err error) {
	var unreachable *insights.SiteUnreachableError
	var notShopify *insights.NotShopifyStoreError
	switch {
	case errors.As(err, &unreachable):
		writeDetail(s.logger, w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &notShopify):
		writeDetail(s.logger, w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("extraction failed",
			zap.String("website_url", websiteURL),
			zap.Error(err),
		)
		writeDetail(s.logger, w, http.StatusInternalServerError, "Internal server error: "+err.Error())
	}
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func loggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.status),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

func recoverMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", zap.Any("error", rec))
					writeDetail(logger, w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	allowed := "*"
	if len(origins) > 0 {
		allowed = strings.Join(origins, ", ")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

type requestIDKey struct{}

func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("write JSON failed", zap.Error(err))
	}
}

func writeDetail(logger *zap.Logger, w http.ResponseWriter, status int, detail string) {
	writeJSON(logger, w, status, map[string]string{"detail": detail})
}
