package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	// SessionName is the cookie holding the per-client session.
	SessionName = "portfolio_session"
	// sessionKeyAdminAuth is the single boolean flag granting admin access.
	sessionKeyAdminAuth = "admin_auth"

	// session cookie lifetime: 30 days
	sessionMaxAge = 30 * 24 * 60 * 60
)

// NewSessionStore builds the cookie session store shared by the admin routes.
func NewSessionStore(secretKey string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   false, // set behind HTTPS termination in production
	}
	return store
}

// isAdmin reports whether the request carries an authenticated admin session.
func isAdmin(store sessions.Store, r *http.Request) bool {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return false
	}
	auth, ok := session.Values[sessionKeyAdminAuth].(bool)
	return ok && auth
}

// RequireAdmin gates a handler behind the admin session flag. Unauthenticated
// access redirects to the login page; that redirect is the only transition
// guard in the system.
func RequireAdmin(store sessions.Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(store, r) {
			http.Redirect(w, r, "/admin-login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
