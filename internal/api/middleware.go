package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/estevam5s/docgen/internal/session"
)

// SessionMiddleware resolves the caller's session from a cookie,
// creating a fresh session (and cookie) when none exists or the old
// one expired.
type SessionMiddleware struct {
	store      session.Store
	cookieName string
	ttl        time.Duration
}

// NewSessionMiddleware creates new session middleware
func NewSessionMiddleware(store session.Store, cookieName string, ttl time.Duration) *SessionMiddleware {
	return &SessionMiddleware{
		store:      store,
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// Ensure attaches the request's session to the context, minting a new
// one when needed
func (m *SessionMiddleware) Ensure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.resolve(r)
		if s == nil {
			s = session.New()
			if err := m.store.Save(r.Context(), s); err != nil {
				slog.Error("failed to create session", "error", err)
				respondError(w, http.StatusInternalServerError, "internal_error", "failed to create session")
				return
			}
			m.setCookie(w, s.ID)
			slog.Debug("session created", "session_id", s.ID)
		}

		ctx := ContextWithSession(r.Context(), s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolve loads the session referenced by the cookie, or nil
func (m *SessionMiddleware) resolve(r *http.Request) *session.Session {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	s, err := m.store.Get(r.Context(), cookie.Value)
	if errors.Is(err, session.ErrNotFound) {
		return nil
	}
	if err != nil {
		slog.Error("failed to load session", "error", err, "session_id", cookie.Value)
		return nil
	}
	return s
}

func (m *SessionMiddleware) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
