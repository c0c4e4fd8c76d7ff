// internal/api/server.go
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"restaurant-finder/internal/common/config"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/metrics"
	"restaurant-finder/internal/common/observability"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	RequestIDHeader   = "X-Request-ID"
	readHeaderTimeout = 10 * time.Second
)

type Server struct {
	Router *mux.Router
	server *http.Server
	config config.ServerConfig
	logger logger.Logger
}

// NewServer wires the API routes, health probes and the Prometheus endpoint.
func NewServer(cfg config.ServerConfig, h *Handler, obs *observability.Observability, log logger.Logger) *Server {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware)
	router.Use(instrumentMiddleware(obs, log))

	router.HandleFunc("/search/", h.Search).Methods(http.MethodPost)
	router.HandleFunc("/details/", h.Details).Methods(http.MethodGet)
	router.HandleFunc("/clear-cache/", h.ClearCache).Methods(http.MethodGet)

	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/ready", h.Ready).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return &Server{
		Router: router,
		config: cfg,
		logger: log,
	}
}

func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Router,
		ReadTimeout:       config.GetDuration(s.config.ReadTimeout),
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      config.GetDuration(s.config.WriteTimeout),
	}
	s.logger.Info("API server listening", map[string]interface{}{"address": s.config.Address})
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(timeout time.Duration) error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// requestIDMiddleware propagates or assigns X-Request-ID.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := logger.ContextWithFields(r.Context(), map[string]interface{}{"requestId": id})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func instrumentMiddleware(obs *observability.Observability, log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			route := r.URL.Path
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			ctx, span := obs.StartSpan(r.Context(), r.Method+" "+route,
				attribute.String("http.route", route),
				attribute.String("http.method", r.Method),
			)
			defer span.End()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			elapsed := time.Since(start)
			span.SetAttributes(attribute.Int("http.status_code", rec.status))

			metrics.HTTPRequestDuration.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Observe(elapsed.Seconds())
			obs.RecordRequest(ctx, route, r.Method, rec.status, elapsed)

			if route == "/metrics" || route == "/health" || route == "/ready" {
				return
			}
			logger.ForContext(ctx, log).Info("request served", map[string]interface{}{
				"method":     r.Method,
				"route":      route,
				"status":     rec.status,
				"durationMs": elapsed.Milliseconds(),
			})
		})
	}
}
