// Package observability wires OpenTelemetry tracing and metrics into
// pipeline runs.
//
// Init installs OTLP/HTTP trace and metric providers when telemetry is
// enabled and leaves the no-op globals in place otherwise. PipelineObserver
// turns every pipeline.Event into a span event on the run span and into
// counter increments, so an exported trace shows the same order as the
// printed one.
package observability
