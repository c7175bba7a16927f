package api

import (
	"context"

	"github.com/estevam5s/docgen/internal/session"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext extracts the request's session from context
func SessionFromContext(ctx context.Context) *session.Session {
	s, ok := ctx.Value(sessionContextKey).(*session.Session)
	if !ok {
		return nil
	}
	return s
}

// ContextWithSession adds a session to context
func ContextWithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}
