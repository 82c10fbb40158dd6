package clientip

import "context"

type ipContextKey struct{}

// WithIP stores the resolved client IP in the context.
func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ipContextKey{}, ip)
}

// FromContext retrieves the client IP previously stored by Middleware
// or WithIP. Returns an empty string when none is present.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ipContextKey{}).(string)
	return ip
}
