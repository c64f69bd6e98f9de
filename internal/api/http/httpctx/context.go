// Package httpctx carries the authenticated principal on the request
// context between middleware and handlers.
package httpctx

import "context"

type userIDKey struct{}

// Manager sets and retrieves the authenticated user ID on a request
// context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserID returns a child context carrying the user ID.
func (m *Manager) SetUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID retrieves the user ID placed by SetUserID. The boolean is
// false when no principal is attached.
func (m *Manager) GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
