package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ZapLogger adapts a zap.Logger to the Logger interface. WARN entries are
// written at zap's warn level, and everything else at debug.
type ZapLogger struct {
	Logger *zap.Logger
}

// NewZapLogger returns a ZapLogger writing to l. A nil l logs nothing.
func NewZapLogger(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{Logger: l}
}

// Logf formats the message and writes it at the level matching
// classification.
func (z *ZapLogger) Logf(classification Classification, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	switch classification {
	case Warn:
		z.Logger.Warn(msg)
	default:
		z.Logger.Debug(msg)
	}
}

type requestIDKey struct{}

// WithRequestID returns a context whose ZapLogger entries carry id as the
// "requestID" field.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithContext returns a logger annotated with the request ID stored on ctx,
// if any.
func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	id, ok := ctx.Value(requestIDKey{}).(string)
	if !ok || len(id) == 0 {
		return z
	}
	return &ZapLogger{Logger: z.Logger.With(zap.String("requestID", id))}
}
