package context

import (
	"context"
)

// HeaderRequestID carries the request ID on requests and responses.
const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

// Manager stores and retrieves request IDs in request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetRequestIDToContext returns a copy of ctx carrying requestID.
func (m *Manager) SetRequestIDToContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromContext returns the request ID stored in ctx.
// Empty IDs are reported as absent.
func (m *Manager) GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey{}).(string)
	if !ok || requestID == "" {
		return "", false
	}

	return requestID, true
}
