// Package session holds the login state: opaque token -> admin identity,
// valid for a fixed TTL from creation. The Store interface keeps the backing
// pluggable (in-memory map, or the sessions table for deployments that must
// survive restarts).
package session

import (
	"context"
	"net/http"
	"time"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "session_token"

// DefaultTTL is the fixed session lifetime; not sliding.
const DefaultTTL = 24 * time.Hour

type Session struct {
	Token     string
	AdminID   int
	Username  string
	ExpiresAt time.Time
}

type Store interface {
	// Create opens a session for the admin and returns the opaque token.
	Create(adminID int, username string) (string, error)
	// Resolve returns the live session for token, or nil when the token is
	// unknown or expired. The error is reserved for storage faults.
	Resolve(token string) (*Session, error)
	// Destroy removes the session; destroying an unknown token is a no-op.
	Destroy(token string) error
}

type contextKey struct{}

// FromContext returns the session the RequireLogin middleware attached.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}

func withSession(r *http.Request, s *Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), contextKey{}, s))
}

// SetCookie attaches the session cookie to the response.
func SetCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(ttl.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
