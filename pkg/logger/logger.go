// Package logger provides the structured, levelled logger built on log/slog.
//
// Logs go to stderr; stdout is reserved for the human-readable progress
// lines printed by the CLI. WithCtx attaches the deployment run ID:
//
//	log := logger.WithCtx(ctx)
//	log.Info("brand system created", "name", "Canon RF")
//	// → time=... level=INFO msg="brand system created" run_id=6f1c... name="Canon RF"
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shashiranjanraj/rentaldeploy/config"
	"github.com/shashiranjanraj/rentaldeploy/pkg/runid"
)

// L is the process-wide logger. It starts as a text logger on stderr so
// packages can log before Init runs (and in tests).
var L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Init builds L from settings: JSON in production, text elsewhere, with an
// optional MongoDB fan-out. The returned func flushes and closes any extra
// sinks and must be called before the process exits.
func Init(app config.App, cfg config.Log) (func(), error) {
	return InitWriter(os.Stderr, app, cfg)
}

// InitWriter is Init with an explicit output writer.
func InitWriter(w io.Writer, app config.App, cfg config.Log) (func(), error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if app.Production() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	closer := func() {}
	if cfg.MongoURI != "" {
		mh, err := NewMongoHandler(cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection, opts.Level.Level())
		if err != nil {
			return closer, fmt.Errorf("logger: %w", err)
		}
		handler = NewMultiHandler(handler, mh)
		closer = mh.Close
	}

	L = slog.New(handler)
	slog.SetDefault(L)
	return closer, nil
}

// ParseLevel maps debug|info|warn|error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithCtx returns L tagged with the run ID found in ctx.
func WithCtx(ctx context.Context) *slog.Logger {
	if id := runid.FromCtx(ctx); id != "" {
		return L.With("run_id", id)
	}
	return L
}

// Discard returns a logger that drops everything. Handy for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
