package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/ColonyPlanner_Go/docs" // registers the swagger spec
	"github.com/osse101/ColonyPlanner_Go/internal/handler"
	"github.com/osse101/ColonyPlanner_Go/internal/logger"
	"github.com/osse101/ColonyPlanner_Go/internal/metrics"
	"github.com/osse101/ColonyPlanner_Go/internal/planner"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	RequestTimeout time.Duration
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
	planner    planner.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, plannerService planner.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, plannerService),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		planner: plannerService,
	}
}

// NewRouter builds the route tree and middleware stack
func NewRouter(opts Options, plannerService planner.Service) http.Handler {
	trusted, rejected := ParseTrustedProxies(opts.TrustedProxies)
	for _, entry := range rejected {
		slog.Warn(LogMsgTrustedProxyIgnore, "entry", entry)
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trusted, NewRateLimiter(RateLimitRequests, RateLimitWindow)))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(plannerService))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(plannerService))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route(APIPrefix, func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(middleware.Timeout(opts.RequestTimeout))
		}

		requirementsHandler := handler.NewRequirementsHandler(plannerService)
		r.Post("/requirements", requirementsHandler.HandleResolve)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", requirementsHandler.HandleListItems)
			r.Get("/{itemID}/creators", requirementsHandler.HandleListCreators)
		})

		// Admin routes
		adminCatalogHandler := handler.NewAdminCatalogHandler(plannerService)
		r.Route("/admin/catalog", func(r chi.Router) {
			r.Get("/", adminCatalogHandler.HandleCatalogStatus)
			r.Post("/reload", adminCatalogHandler.HandleReloadCatalog)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isSensitiveHeader(name string) bool {
	return strings.EqualFold(name, HeaderAPIKey) ||
		strings.EqualFold(name, HeaderAuthorization) ||
		strings.EqualFold(name, HeaderCookie)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Honour an upstream request id so traces line up across proxies
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if isSensitiveHeader(k) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", metrics.StatusOf(ww),
			"bytes", ww.BytesWritten(),
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
