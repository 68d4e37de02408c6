// Package inspect serves a mounted demo over HTTP: the live document,
// event dispatch, the reconciliation log as a websocket stream, and
// Prometheus metrics.
package inspect

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/vrange/internal/config"
	"github.com/vango-dev/vrange/internal/demo"
	"github.com/vango-dev/vrange/internal/errors"
	"github.com/vango-dev/vrange/internal/snapshot"
	"github.com/vango-dev/vrange/pkg/observe"
)

// Options configures a Server.
type Options struct {
	Config   config.InspectConfig
	Session  *demo.Session
	Recorder *observe.Recorder

	// Store receives POST /snapshot requests. Optional.
	Store snapshot.Store

	// Gatherer backs the metrics route. Default: prometheus.DefaultGatherer
	Gatherer prometheus.Gatherer

	Logger *slog.Logger
}

// Server is the inspector HTTP server.
type Server struct {
	router   chi.Router
	cfg      config.InspectConfig
	recorder *observe.Recorder
	store    snapshot.Store
	gatherer prometheus.Gatherer
	upgrader websocket.Upgrader
	log      *slog.Logger

	// mu serializes every access to session; renderers are single-threaded.
	mu      sync.Mutex
	session *demo.Session
}

// NewServer creates and configures the inspector.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Config.MetricsPath == "" {
		opts.Config.MetricsPath = config.DefaultMetricsPath
	}
	if opts.Config.StreamBuffer <= 0 {
		opts.Config.StreamBuffer = 64
	}
	if opts.Recorder == nil {
		opts.Recorder = observe.NewRecorder(0)
	}

	s := &Server{
		cfg:      opts.Config,
		session:  opts.Session,
		recorder: opts.Recorder,
		store:    opts.Store,
		gatherer: opts.Gatherer,
		log:      opts.Logger.With("component", "inspect"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/snapshot", s.handleSnapshot)
	r.Post("/snapshot", s.handleSaveSnapshot)
	r.Post("/dispatch", s.handleDispatch)
	r.Get("/records", s.handleRecords)
	r.Get("/ws", s.handleStream)
	r.Method(http.MethodGet, s.cfg.MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	s.router = r
}

// ListenAndServe serves on the configured address until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("inspector listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	body := map[string]string{"error": err.Error()}
	if code := errors.Code(err); code != "" {
		body["code"] = code
	}
	writeJSON(w, status, body)
}
