// Package telemetry provides the Prometheus metrics and OpenTelemetry spans
// of the docs site and the playground.
//
// Metrics are registered per registry, so tests and multiple servers in one
// process do not collide:
//
//	reg := prometheus.NewRegistry()
//	m := telemetry.NewMetrics(telemetry.WithRegistry(reg))
//
// Spans use the global tracer provider. Configure one before starting the
// server to export them; otherwise they cost nothing.
package telemetry
