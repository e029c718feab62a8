package session

import "net/http"

// Middleware decodes the session cookie into the request context. A missing
// or invalid cookie yields an Anonymous session; it never rejects a request
// itself, that is RequireRole's job.
func (p *Provider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := Session{State: StateAnonymous}
		if ck, err := r.Cookie(CookieName); err == nil {
			if decoded, err := p.codec.Decode(ck.Value); err == nil {
				s = decoded
			} else {
				p.codec.ClearCookie(w)
			}
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

// RequireRole guards a route group: anonymous users are sent to login,
// authenticated users without the role get 403.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := FromContext(r.Context())
			if !s.Authenticated() {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			if !s.HasRole(role) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth admits any authenticated role.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !FromContext(r.Context()).Authenticated() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
