package clientip

import "net/http"

// Middleware resolves the client IP once per request and injects it into
// the request context so downstream handlers can read it via FromContext.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithIP(r.Context(), Resolve(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
