package session

import "net/http"

// Middleware attaches the session to the request context when the
// request carries a valid one, and passes through otherwise. Handlers
// that merely adapt to an authenticated user belong behind this;
// handlers that require one belong behind RequireSession.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Resolve(r.Context(), r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// RequireSession rejects requests without a valid session. Every
// validation failure kind (unknown token, expired, inactive, security
// mismatch) maps to an authentication-required response.
func (m *Manager) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Resolve(r.Context(), r)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// RequireRoles rejects authenticated sessions lacking all of the given
// roles with an authorization failure. Compose it behind RequireSession:
//
//	mux.Handle("/payroll", m.RequireSession(m.RequireRoles("Payroll")(payrollHandler)))
func (m *Manager) RequireRoles(required ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := FromContext(r.Context())
			if !ok {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			if !sess.HasAnyRole(required...) {
				http.Error(w, "insufficient role", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
