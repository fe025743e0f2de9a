// Package correlation carries the request correlation identifier through contexts
// so outbound calls can forward it without knowing about the HTTP server.
package correlation

import (
	"context"
	"strings"
)

// Header is propagated from the browser request to every backend call it causes.
const Header = "X-Correlation-ID"

type contextKey struct{}

// WithID attaches the correlation identifier to ctx. Blank identifiers are ignored.
func WithID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the correlation identifier from ctx, if present.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}
