package site

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/elements/internal/config"
	"github.com/vango-dev/elements/internal/errors"
	"github.com/vango-dev/elements/internal/playground"
	"github.com/vango-dev/elements/internal/registry"
	"github.com/vango-dev/elements/internal/stories"
	"github.com/vango-dev/elements/internal/telemetry"
	"github.com/vango-dev/elements/pkg/components"
	"github.com/vango-dev/elements/pkg/style"
)

// Options configures a Server.
type Options struct {
	Config  *config.Config
	Stories *stories.Set

	// Theme is written into every page. Default: style.DefaultTheme().
	Theme *style.Theme

	// Registry receives the server's metrics and is served at /metrics.
	// Default: a new registry.
	Registry *prometheus.Registry

	Logger *slog.Logger
}

// Server is the docs site: component pages with rendered stories, the
// registry manifest, the WebSocket playground and operational endpoints.
type Server struct {
	config   *config.Config
	stories  *stories.Set
	theme    style.Theme
	manifest *registry.Manifest
	body     []byte
	checksum string

	registry   *prometheus.Registry
	metrics    *telemetry.Metrics
	playground *playground.Manager
	logger     *slog.Logger
}

// New builds the manifest, validates it and starts the playground session
// manager. Call Close when done.
func New(opts Options) (*Server, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	set := opts.Stories
	if set == nil {
		set = stories.Builtin()
	}
	theme := style.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := registry.Build(cfg, components.Catalog())
	if err := m.Validate(); err != nil {
		return nil, err
	}
	body, err := m.Bytes()
	if err != nil {
		return nil, err
	}
	sum, err := m.Checksum()
	if err != nil {
		return nil, err
	}

	metrics := telemetry.NewMetrics(telemetry.WithRegistry(reg))
	return &Server{
		config:   cfg,
		stories:  set,
		theme:    theme,
		manifest: m,
		body:     body,
		checksum: sum,
		registry: reg,
		metrics:  metrics,
		playground: playground.NewManager(playground.ManagerConfig{
			MaxSessions: cfg.Playground.MaxSessions,
			IdleTimeout: cfg.IdleTimeout(),
			Metrics:     metrics,
			Logger:      logger,
		}),
		logger: logger.With("component", "site"),
	}, nil
}

// Handler returns the site's routes.
//
//	GET /                      component index
//	GET /components/{name}     component page with its stories
//	GET /stories/{name}        rendered story fragment
//	GET /play/{story}          playground page
//	GET /play/ws?story=...     playground WebSocket
//	GET /registry.json         registry manifest
//	GET /metrics               Prometheus metrics
//	GET /healthz               liveness
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(s.metrics.Middleware)
	if s.config.Tracing {
		r.Use(telemetry.TraceRequests)
	}

	r.Get("/", s.handleIndex)
	r.Get("/components/{name}", s.handleComponent)
	r.Get("/stories/{name}", s.handleStory)
	r.Handle("/play/ws", playground.NewHandler(s.playground, s.stories))
	r.Get("/play/{story}", s.handlePlay)
	r.Get("/registry.json", s.handleRegistry)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return r
}

// ListenAndServe serves the site on the configured address until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("E161").Wrap(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// Manifest returns the manifest served at /registry.json.
func (s *Server) Manifest() *registry.Manifest { return s.manifest }

// Close stops the playground and closes its sessions.
func (s *Server) Close() {
	s.playground.Shutdown()
}
