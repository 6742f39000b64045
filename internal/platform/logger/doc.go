// Package logger configures the process-wide slog handler and passes
// request-scoped loggers through a context.Context.
package logger
