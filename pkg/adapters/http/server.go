package http

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tabula-historica/snapshot/pkg/domain"
	"github.com/tabula-historica/snapshot/pkg/ports"
)

// DefaultName is the path segment the snapshot is served under.
const DefaultName = "static-project.json"

// Server serves the published snapshot read-only.
type Server struct {
	Store  ports.DocumentLoader
	Name   string
	logger *slog.Logger

	registry *prometheus.Registry
	requests *prometheus.CounterVec
	size     prometheus.Gauge
}

// Option configures the Server.
type Option func(*Server)

// WithName sets the path segment the snapshot is served under.
func WithName(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.Name = name
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry registers the server metrics on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// NewServer creates a Server reading the snapshot from store on every request.
func NewServer(store ports.DocumentLoader, opts ...Option) *Server {
	s := &Server{
		Store:  store,
		Name:   DefaultName,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}

	s.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_http_requests_total",
			Help: "Snapshot requests by response status code",
		},
		[]string{"code"},
	)
	s.size = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "snapshot_served_bytes",
		Help: "Size of the most recently served snapshot",
	})
	s.registry.MustRegister(s.requests, s.size)

	return s
}

// NewHandler creates a new HTTP handler serving the snapshot in store.
func NewHandler(store ports.DocumentLoader, opts ...Option) http.Handler {
	return NewServer(store, opts...).Handler()
}

// Handler builds the router.
//
//	GET /{name}    the snapshot
//	GET /healthz   liveness
//	GET /metrics   Prometheus metrics
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/"+s.Name, s.Snapshot)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

// Snapshot handles GET /{name}.
func (s *Server) Snapshot(w http.ResponseWriter, r *http.Request) {
	data, err := s.Store.Load(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.requests.WithLabelValues(strconv.Itoa(http.StatusNotFound)).Inc()
			http.Error(w, "Snapshot not published", http.StatusNotFound)
			s.logger.Warn("Snapshot: not found", "store", ports.Describe(s.Store))
			return
		}
		s.requests.WithLabelValues(strconv.Itoa(http.StatusInternalServerError)).Inc()
		http.Error(w, "Failed to load snapshot", http.StatusInternalServerError)
		s.logger.Error("Snapshot: load failed", "error", err)
		return
	}

	etag := fmt.Sprintf(`"%x"`, sha256.Sum256(data))
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		s.requests.WithLabelValues(strconv.Itoa(http.StatusNotModified)).Inc()
		w.WriteHeader(http.StatusNotModified)
		return
	}

	s.requests.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	s.size.Set(float64(len(data)))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		s.logger.Debug("Snapshot: write aborted", "error", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, If-None-Match")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
