// Package middleware provides navigation middleware for observability.
//
// # Prometheus Metrics
//
// Metrics collects navigation counts and latencies, focus retargeting
// outcomes and live session counts:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("logsviewer"))
//	outlet := router.NewOutlet(sw, pipeline, router.WithMiddleware(m.Middleware()))
//	pipeline := nav.New(doc, nav.WithObserver(m))
//
// Metrics registers on prometheus.DefaultRegisterer unless WithRegistry is
// given. Expose them with promhttp.
//
// # OpenTelemetry
//
// OpenTelemetry wraps every navigation in a span and places the span
// context on the navigation so later middleware inherit it:
//
//	router.WithMiddleware(
//	    middleware.OpenTelemetry(middleware.WithTracerName("logsviewer")),
//	)
//
// The tracer comes from the global provider; configure it with
// otel.SetTracerProvider before serving.
package middleware
