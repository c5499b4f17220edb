// Package logger provides structured logging for seqtrace using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. Output defaults to stderr
// so diagnostics never mix with the trace written to stdout.
//
// # Configuration
//
//	logging:
//	  level: "warn"
//	  format: "console"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("runner")
//	log.Debug("stage applied", logger.Fields(logger.FieldStage, "double"))
package logger
