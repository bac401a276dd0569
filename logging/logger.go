// Package logging provides the leveled Logger interface used while
// marshalling, and a zap-backed implementation of it.
package logging

import (
	"context"
)

// Classification is the level of a log entry.
type Classification string

// Enumerates Classification.
const (
	Warn  Classification = "WARN"
	Debug Classification = "DEBUG"
)

// Logger writes classified log entries. Logf takes fmt verbs.
type Logger interface {
	Logf(level Classification, format string, v ...interface{})
}

// ContextLogger is implemented by loggers that can attach values carried on
// a context, such as the request ID, to their entries.
type ContextLogger interface {
	WithContext(context.Context) Logger
}

// WithContext returns logger bound to ctx when it is a ContextLogger, and
// logger unchanged otherwise.
func WithContext(ctx context.Context, logger Logger) Logger {
	if cl, ok := logger.(ContextLogger); ok {
		return cl.WithContext(ctx)
	}
	return logger
}

// Noop discards every entry.
type Noop struct{}

// Logf does nothing.
func (Noop) Logf(Classification, string, ...interface{}) {}
