// Package logging defines the structured logger used by the admin client.
// Stores, the HTTP transport and the REPL all log through Logger so the
// binary decides the handler (JSON to stderr) and tests can stay silent.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are key/value
// pairs:
//
//	log.Warn(ctx, "store action failed", "store", "profiles", "action", "add_note")
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
