package middleware

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/logsviewer/logsviewer/pkg/nav"
	"github.com/logsviewer/logsviewer/pkg/router"
)

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	out := router.NewOutlet(testSwitch(t), nil, router.WithMiddleware(m.Middleware()))

	ctx := context.Background()
	for _, p := range []string{"/", "/nodes/a", "/nodes/b", "/missing"} {
		if _, err := out.Navigate(ctx, p); err != nil {
			t.Fatalf("Navigate(%q) error: %v", p, err)
		}
	}

	tests := []struct {
		route, outcome string
		want           float64
	}{
		{"/", OutcomeMatched, 1},
		// Labeled by pattern, not by URL.
		{"/nodes/:name", OutcomeMatched, 2},
		{"", OutcomeNotFound, 1},
	}
	for _, tt := range tests {
		got := testutil.ToFloat64(m.navigationsTotal.WithLabelValues(tt.route, tt.outcome))
		if got != tt.want {
			t.Errorf("navigations_total{route=%q,outcome=%q} = %v, want %v", tt.route, tt.outcome, got, tt.want)
		}
	}

	if got := metricHistogramCount(t, m.navigationDuration.WithLabelValues(OutcomeMatched)); got != 3 {
		t.Errorf("matched duration samples = %d, want 3", got)
	}
}

func TestMetricsMiddlewareErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))

	out := router.NewOutlet(testSwitch(t), nil,
		router.WithMiddleware(m.Middleware()),
		router.WithCommit(func(*router.Resolution) error { return errors.New("websocket: close sent") }),
	)
	if _, err := out.Navigate(context.Background(), "/"); err == nil {
		t.Fatal("expected commit error")
	}

	if got := testutil.ToFloat64(m.navigationsTotal.WithLabelValues("/", OutcomeError)); got != 1 {
		t.Errorf("error navigations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.navigationErrors.WithLabelValues("websocket")); got != 1 {
		t.Errorf("websocket errors = %v, want 1", got)
	}

	expected := `
# HELP test_navigation_errors_total Total number of failed navigations by error type
# TYPE test_navigation_errors_total counter
test_navigation_errors_total{error_type="websocket"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_navigation_errors_total"); err != nil {
		t.Error(err)
	}
}

func TestMetricsDroppedNavigation(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	drop := router.MiddlewareFunc(func(*router.Navigation, func() error) error { return nil })

	out := router.NewOutlet(testSwitch(t), nil, router.WithMiddleware(m.Middleware(), drop))
	if _, err := out.Navigate(context.Background(), "/"); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(m.navigationsTotal.WithLabelValues("", OutcomeDropped)); got != 1 {
		t.Errorf("dropped navigations = %v, want 1", got)
	}
}

type blankDocument struct{ present bool }

func (blankDocument) SetTitle(string)     {}
func (d blankDocument) Focus(string) bool { return d.present }

type manualScheduler struct{ fns []func() }

type manualTimer struct{}

func (manualTimer) Stop() bool { return true }

func (s *manualScheduler) AfterFunc(_ time.Duration, fn, _ func()) nav.Timer {
	s.fns = append(s.fns, fn)
	return manualTimer{}
}

func TestMetricsObserver(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	sched := &manualScheduler{}
	p := nav.New(blankDocument{present: true}, nav.WithObserver(m), nav.WithScheduler(sched))

	p.Navigated("/a", "A")
	p.Navigated("/b", "B")
	sched.fns[1]()
	p.NotFound("404 Page Not Found")

	if got := testutil.ToFloat64(m.titlesApplied); got != 3 {
		t.Errorf("titles_applied_total = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.focusArmed); got != 2 {
		t.Errorf("focus_armed_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.focusCancelled); got != 1 {
		t.Errorf("focus_cancelled_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.focusRetargets.WithLabelValues("found")); got != 1 {
		t.Errorf("focus_retargets_total{found} = %v, want 1", got)
	}

	m.FocusRetargeted(false)
	if got := testutil.ToFloat64(m.focusRetargets.WithLabelValues("missing")); got != 1 {
		t.Errorf("focus_retargets_total{missing} = %v, want 1", got)
	}
}

func TestMetricsSessions(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.WebSocketError("read")

	if got := testutil.ToFloat64(m.activeSessions); got != 1 {
		t.Errorf("active_sessions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.wsErrors.WithLabelValues("read")); got != 1 {
		t.Errorf("websocket_errors_total{read} = %v, want 1", got)
	}
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{context.Canceled, "canceled"},
		{context.DeadlineExceeded, "timeout"},
		{errors.New("write: broken pipe"), "websocket"},
		{errors.New("E301: Session closed"), "closed"},
		{errors.New("boom"), "internal"},
	}
	for _, tt := range tests {
		if got := categorizeError(tt.err); got != tt.want {
			t.Errorf("categorizeError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
