package fingerprint

import "context"

type fingerprintContextKey struct{}

// WithFingerprint stores a fingerprint in the context.
func WithFingerprint(ctx context.Context, fp string) context.Context {
	return context.WithValue(ctx, fingerprintContextKey{}, fp)
}

// FromContext retrieves a fingerprint previously stored by Middleware or
// WithFingerprint. Returns an empty string when none is present.
func FromContext(ctx context.Context) string {
	fp, _ := ctx.Value(fingerprintContextKey{}).(string)
	return fp
}
