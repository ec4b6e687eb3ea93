package middleware

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/logsviewer/logsviewer/pkg/router"
)

// Navigation outcomes used as label values.
const (
	OutcomeMatched  = "matched"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeDropped  = "dropped"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "logsviewer").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for navigation duration.
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

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
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
		Namespace: "logsviewer",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the navigation metrics. It implements nav.Observer.
type Metrics struct {
	navigationsTotal   *prometheus.CounterVec
	navigationDuration *prometheus.HistogramVec
	navigationErrors   *prometheus.CounterVec
	titlesApplied      prometheus.Counter
	focusArmed         prometheus.Counter
	focusCancelled     prometheus.Counter
	focusRetargets     *prometheus.CounterVec
	activeSessions     prometheus.Gauge
	wsErrors           *prometheus.CounterVec
}

// NewMetrics creates and registers the metrics.
//
// Metrics collected:
//   - navigations_total: Counter of navigations by route pattern and outcome
//   - navigation_duration_seconds: Histogram of resolve+commit duration
//   - navigation_errors_total: Counter of failed navigations by error type
//   - titles_applied_total: Counter of document title updates
//   - focus_armed_total: Counter of scheduled focus moves
//   - focus_cancelled_total: Counter of focus moves cancelled before running
//   - focus_retargets_total: Counter of focus moves by result (found, missing)
//   - active_sessions: Gauge of live navigation sessions
//   - websocket_errors_total: Counter of WebSocket errors by type
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		})
	}
	counterVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		}, labels)
	}

	return &Metrics{
		navigationsTotal: counterVec("navigations_total",
			"Total number of navigations by route and outcome", "route", "outcome"),

		navigationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_duration_seconds",
			Help:        "Navigation resolve and commit duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"outcome"}),

		navigationErrors: counterVec("navigation_errors_total",
			"Total number of failed navigations by error type", "error_type"),

		titlesApplied:  counter("titles_applied_total", "Total number of document title updates"),
		focusArmed:     counter("focus_armed_total", "Total number of scheduled focus moves"),
		focusCancelled: counter("focus_cancelled_total", "Total number of focus moves cancelled before running"),

		focusRetargets: counterVec("focus_retargets_total",
			"Total number of focus moves by result", "result"),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of live navigation sessions",
			ConstLabels: config.ConstLabels,
		}),

		wsErrors: counterVec("websocket_errors_total",
			"Total WebSocket errors by type", "type"),
	}
}

// Middleware returns navigation middleware recording counts and durations.
// Routes are labeled by pattern, never by the requested URL.
func (m *Metrics) Middleware() router.Middleware {
	return router.MiddlewareFunc(func(nav *router.Navigation, next func() error) error {
		start := time.Now()
		err := next()
		duration := time.Since(start).Seconds()

		route, outcome := "", OutcomeDropped
		if res := nav.Result; res != nil {
			if res.NotFound {
				outcome = OutcomeNotFound
			} else {
				route = res.Match.Pattern
				outcome = OutcomeMatched
			}
		}
		if err != nil {
			outcome = OutcomeError
			m.navigationErrors.WithLabelValues(categorizeError(err)).Inc()
		}

		m.navigationDuration.WithLabelValues(outcome).Observe(duration)
		m.navigationsTotal.WithLabelValues(route, outcome).Inc()
		return err
	})
}

// categorizeError returns a category for the error type.
// This prevents high-cardinality labels from error messages.
func categorizeError(err error) string {
	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "context canceled"):
		return "canceled"
	case strings.Contains(errStr, "deadline exceeded"), strings.Contains(errStr, "timeout"):
		return "timeout"
	case strings.Contains(errStr, "websocket"), strings.Contains(errStr, "broken pipe"):
		return "websocket"
	case strings.Contains(errStr, "closed"):
		return "closed"
	default:
		return "internal"
	}
}

// TitleApplied implements nav.Observer.
func (m *Metrics) TitleApplied(string) {
	m.titlesApplied.Inc()
}

// FocusArmed implements nav.Observer.
func (m *Metrics) FocusArmed() {
	m.focusArmed.Inc()
}

// FocusCancelled implements nav.Observer.
func (m *Metrics) FocusCancelled() {
	m.focusCancelled.Inc()
}

// FocusRetargeted implements nav.Observer.
func (m *Metrics) FocusRetargeted(found bool) {
	result := "found"
	if !found {
		result = "missing"
	}
	m.focusRetargets.WithLabelValues(result).Inc()
}

// SessionOpened records a new live session.
func (m *Metrics) SessionOpened() {
	m.activeSessions.Inc()
}

// SessionClosed records the end of a live session.
func (m *Metrics) SessionClosed() {
	m.activeSessions.Dec()
}

// WebSocketError records a WebSocket error.
func (m *Metrics) WebSocketError(errorType string) {
	m.wsErrors.WithLabelValues(errorType).Inc()
}
