// Package logging defines the structured-logging interface used across the
// server together with slog and zap backed implementations.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are key-value pairs:
//
//	log.Info(ctx, "todo created", "user_id", uid, "todo_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

// New picks a backend by name: "zap" selects the zap production logger,
// anything else the slog JSON handler on stdout.
func New(format string) (Logger, error) {
	if format == "zap" {
		return NewZapProduction()
	}
	return NewJSONSlogLogger(), nil
}
