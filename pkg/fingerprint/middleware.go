package fingerprint

import "net/http"

// Middleware computes the request fingerprint once and injects it into
// the request context for downstream handlers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithFingerprint(r.Context(), Generate(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
