// Package runid identifies a single deployment run.
//
// Every invocation of the CLI gets one ID. It is stored in the root context,
// attached to each log line by logger.WithCtx and shipped with the metrics
// push, so all traces of one deployment can be correlated afterwards.
package runid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh random run ID.
func New() string {
	return uuid.NewString()
}

// WithValue stores id in ctx.
func WithValue(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromCtx returns the run ID in ctx, or "" when there is none.
func FromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// Ensure returns ctx unchanged when it already carries a run ID, otherwise a
// child context with a new one.
func Ensure(ctx context.Context) context.Context {
	if FromCtx(ctx) != "" {
		return ctx
	}
	return WithValue(ctx, New())
}
