package telemetry

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/elements/internal/errors"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "elements").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "elements",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the collectors of the docs site and the playground. A nil
// *Metrics records nothing.
type Metrics struct {
	interactionsTotal   *prometheus.CounterVec
	interactionDuration *prometheus.HistogramVec
	interactionErrors   *prometheus.CounterVec
	activeSessions      prometheus.Gauge
	rejectedSessions    prometheus.Counter
	rendersTotal        *prometheus.CounterVec
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	wsErrors            *prometheus.CounterVec
}

// NewMetrics registers the collectors with the configured registry.
//
// Metrics collected:
//   - elements_interactions_total: playground actions by action and status
//   - elements_interaction_duration_seconds: time to apply an action and settle
//   - elements_interaction_errors_total: failed actions by error category
//   - elements_active_sessions: open playground sessions
//   - elements_rejected_sessions_total: sessions refused at the limit
//   - elements_story_renders_total: server-side story renders by story
//   - elements_http_requests_total: HTTP requests by route and status code
//   - elements_http_request_duration_seconds: HTTP latency by route
//   - elements_websocket_errors_total: WebSocket errors by type
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	m := telemetry.NewMetrics(telemetry.WithRegistry(reg))
//	r.Use(m.Middleware)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		interactionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "interactions_total",
			Help:        "Total number of playground actions applied",
			ConstLabels: config.ConstLabels,
		}, []string{"action", "status"}),

		interactionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "interaction_duration_seconds",
			Help:        "Time to apply a playground action and settle the document",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"action"}),

		interactionErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "interaction_errors_total",
			Help:        "Total number of failed playground actions",
			ConstLabels: config.ConstLabels,
		}, []string{"action", "error_type"}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "active_sessions",
			Help:        "Number of open playground sessions",
			ConstLabels: config.ConstLabels,
		}),

		rejectedSessions: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "rejected_sessions_total",
			Help:        "Total number of playground sessions refused at the session limit",
			ConstLabels: config.ConstLabels,
		}),

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "story_renders_total",
			Help:        "Total number of server-side story renders",
			ConstLabels: config.ConstLabels,
		}, []string{"story"}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// ObserveInteraction records one applied playground action.
func (m *Metrics) ObserveInteraction(action string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.interactionDuration.WithLabelValues(action).Observe(d.Seconds())
	status := "success"
	if err != nil {
		status = "error"
		m.interactionErrors.WithLabelValues(action, categorizeError(err)).Inc()
	}
	m.interactionsTotal.WithLabelValues(action, status).Inc()
}

// SessionStarted records a new playground session.
func (m *Metrics) SessionStarted() {
	if m != nil {
		m.activeSessions.Inc()
	}
}

// SessionEnded records a closed playground session.
func (m *Metrics) SessionEnded() {
	if m != nil {
		m.activeSessions.Dec()
	}
}

// SessionRejected records a session refused at the limit.
func (m *Metrics) SessionRejected() {
	if m != nil {
		m.rejectedSessions.Inc()
	}
}

// RecordRender records a server-side render of story.
func (m *Metrics) RecordRender(story string) {
	if m != nil {
		m.rendersTotal.WithLabelValues(story).Inc()
	}
}

// RecordWebSocketError records a WebSocket error.
func (m *Metrics) RecordWebSocketError(errorType string) {
	if m != nil {
		m.wsErrors.WithLabelValues(errorType).Inc()
	}
}

// Middleware records request counts and latency by chi route pattern, so
// that story names in paths do not become label values.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// categorizeError keeps error labels low-cardinality: coded errors report
// their category, anything else is "internal".
func categorizeError(err error) string {
	var ee *errors.ElementsError
	if stderrors.As(err, &ee) && ee.Category != "" {
		return string(ee.Category)
	}
	return "internal"
}
