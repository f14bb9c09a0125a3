// Package utils holds small helpers shared by the server and the terminal
// client: context keys, JSON/text response writers, the resty client wrapper
// and trace id generation.
package utils

import (
	"context"
)

// contextKey keeps values set by this package from colliding with plain
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey stores the trace id of the current request.
var TraceIDCtxKey = contextKey("traceID")

// TraceIDHeader carries the trace id between client and server.
const TraceIDHeader = "X-Trace-ID"

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored in ctx, if any.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
