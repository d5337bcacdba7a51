// Package observability carries per-build log context through context.Context.
package observability

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/apidocs/internal/logfields"
)

// LogContext is the build, stage and version a log line belongs to.
type LogContext struct {
	BuildID string
	Stage   string
	Version string
}

// Attrs returns the non-empty fields as slog attributes.
func (lc LogContext) Attrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	if lc.BuildID != "" {
		attrs = append(attrs, logfields.BuildID(lc.BuildID))
	}
	if lc.Stage != "" {
		attrs = append(attrs, logfields.Stage(lc.Stage))
	}
	if lc.Version != "" {
		attrs = append(attrs, logfields.Version(lc.Version))
	}
	return attrs
}

type ctxKey struct{}

func with(ctx context.Context, set func(*LogContext)) context.Context {
	lc := GetContext(ctx)
	set(&lc)
	return context.WithValue(ctx, ctxKey{}, lc)
}

// WithBuildID tags ctx with the build run identifier.
func WithBuildID(ctx context.Context, buildID string) context.Context {
	return with(ctx, func(lc *LogContext) { lc.BuildID = buildID })
}

// WithStage tags ctx with the pipeline stage being run.
func WithStage(ctx context.Context, stage string) context.Context {
	return with(ctx, func(lc *LogContext) { lc.Stage = stage })
}

// WithVersion tags ctx with the documentation version label.
func WithVersion(ctx context.Context, version string) context.Context {
	return with(ctx, func(lc *LogContext) { lc.Version = version })
}

// GetContext returns the log context stored in ctx, or the zero value.
func GetContext(ctx context.Context) LogContext {
	lc, _ := ctx.Value(ctxKey{}).(LogContext)
	return lc
}

func log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	slog.LogAttrs(ctx, level, msg, append(GetContext(ctx).Attrs(), attrs...)...)
}

func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	log(ctx, slog.LevelDebug, msg, attrs)
}

func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	log(ctx, slog.LevelInfo, msg, attrs)
}

func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	log(ctx, slog.LevelWarn, msg, attrs)
}

func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	log(ctx, slog.LevelError, msg, attrs)
}
