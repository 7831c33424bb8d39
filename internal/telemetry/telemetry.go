// Package telemetry provides the structured logger used by
// cmd/jinjaeval. No example repo in the retrieval
// pack imports a third-party structured-logging library anywhere near
// this domain — go-dws itself has no logging layer at all — but
// ardnew-aenv/log shows the idiom this pack otherwise reaches for: a
// small value type wrapping *slog.Logger, built with functional
// options rather than a package-level global. This package follows
// that shape directly on top of log/slog rather than hand-rolling a
// logging facility, since the standard library's structured logger is
// itself the "library way" here when nothing in the pack supplies a
// dedicated one.
package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger is a thin value wrapper around *slog.Logger.
type Logger struct {
	*slog.Logger
}

// Option configures a Logger built by New.
type Option func(*slog.HandlerOptions)

// WithLevel sets the minimum level a Logger emits.
func WithLevel(level slog.Level) Option {
	return func(o *slog.HandlerOptions) { o.Level = level }
}

// WithSource enables source file/line attribution on each record.
func WithSource(enabled bool) Option {
	return func(o *slog.HandlerOptions) { o.AddSource = enabled }
}

// New builds a Logger writing JSON-formatted records to w, the format
// go-dws's CLI tooling favors for machine-consumable output.
func New(w io.Writer, opts ...Option) Logger {
	ho := &slog.HandlerOptions{Level: slog.LevelInfo}
	for _, opt := range opts {
		opt(ho)
	}
	return Logger{Logger: slog.New(slog.NewJSONHandler(w, ho))}
}

// Default builds a Logger writing to os.Stderr at info level, for
// callers that don't need a custom sink.
func Default() Logger {
	return New(os.Stderr)
}

// With returns a Logger that includes the given attributes on every
// subsequent record, without mutating the receiver.
func (l Logger) With(args ...any) Logger {
	return Logger{Logger: l.Logger.With(args...)}
}

// WithContext attaches ctx-carried attributes, if any are registered
// via slog's context helpers; a no-op pass-through today, kept so
// call sites don't need to change when request-scoped attributes are
// added.
func (l Logger) WithContext(ctx context.Context) Logger {
	return l
}
