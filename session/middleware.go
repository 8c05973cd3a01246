package session

import (
	"net/http"
	"strings"

	"event-manager/audit"
	"event-manager/utils"
)

// RequireLogin guards a handler. API paths get a structured 401; page paths
// are redirected to the login entry point.
func RequireLogin(store Store, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := resolveRequest(store, r)
		if sess == nil {
			audit.Warnf("Unauthorized access attempt to %s from IP: %s", r.URL.Path, utils.ClientIP(r))
			if strings.HasPrefix(r.URL.Path, "/api/") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required.")
			} else {
				http.Redirect(w, r, "/Login", http.StatusFound)
			}
			return
		}
		next(w, withSession(r, sess))
	}
}

// ResolveRequest returns the live session for the request's cookie, or nil.
func ResolveRequest(store Store, r *http.Request) *Session {
	return resolveRequest(store, r)
}

func resolveRequest(store Store, r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	sess, err := store.Resolve(cookie.Value)
	if err != nil {
		audit.Errorf("Session lookup failed: %v", err)
		return nil
	}
	return sess
}
