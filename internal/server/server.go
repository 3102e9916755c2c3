package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/NeuroFarm_Go/internal/database"
	"github.com/osse101/NeuroFarm_Go/internal/handler"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
	"github.com/osse101/NeuroFarm_Go/internal/metrics"
	"github.com/osse101/NeuroFarm_Go/internal/sse"
)

// Options configures the listener and the security middleware
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Detector       DetectorConfig
}

// Handlers groups the HTTP handlers mounted under /api/v1
type Handlers struct {
	Player  *handler.PlayerHandler
	Farm    *handler.FarmHandler
	Catalog *handler.CatalogHandler
	SSEHub  *sse.Hub
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, h Handlers) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetectorWithConfig(opts.Detector)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if p := h.Player; p != nil {
			r.Post("/players", p.CreatePlayer)
			r.Route("/players/{account_key}", func(r chi.Router) {
				r.Get("/", p.GetPlayer)
				r.Put("/language", p.SetLanguage)
				r.Post("/credit", p.Credit)
				r.Post("/debit", p.Debit)
				r.Post("/experience", p.AwardExperience)
				r.Post("/farm", p.CreateFarm)
				r.Post("/explore", p.Explore)
				r.Post("/fish", p.Fish)
				r.Post("/chest", p.OpenChest)
				r.Get("/events", p.RecentEvents)
			})
		}

		if f := h.Farm; f != nil {
			r.Route("/farms/{farm_id}", func(r chi.Router) {
				r.Get("/", f.GetFarm)
				r.Post("/crops", f.Plant)
				r.Get("/crops", f.ListCrops)
				r.Post("/crops/{crop_id}/harvest", f.Harvest)
				r.Post("/animals", f.PurchaseAnimal)
				r.Get("/animals", f.ListAnimals)
				r.Post("/animals/{animal_id}/collect", f.CollectAnimal)
			})
		}

		if c := h.Catalog; c != nil {
			r.Route("/catalog", func(r chi.Router) {
				r.Get("/crops", c.ListCrops)
				r.Get("/animals", c.ListAnimals)
				r.Get("/regions", c.ListRegions)
			})
			r.Post("/admin/catalog/seed", c.Seed)
		}

		if h.SSEHub != nil {
			r.Get("/events", sse.Handler(h.SSEHub))
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
		dbPool: dbPool,
	}
}

// Handler returns the fully wired router
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets the event stream push through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range unloggedPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
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
