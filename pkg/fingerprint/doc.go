// Package fingerprint derives a deterministic device fingerprint from an
// incoming HTTP request.
//
// It combines the client IP address (resolved through the sibling
// clientip package), the User-Agent string and the Accept-Language and
// Accept-Encoding headers, feeds them into SHA-256 and returns the first
// 16 bytes as a 32-character hexadecimal string. The value is stored on a
// session at creation time and compared on later requests to spot a token
// being replayed from a different device.
//
// A fingerprint is an anomaly signal, not an authentication factor: two
// browsers on the same network can collide, and a determined attacker can
// copy headers. Treat a mismatch as grounds to force re-authentication,
// never a match as proof of identity.
//
// # Usage
//
//	fp := fingerprint.Generate(r) // *http.Request
//
//	if !fingerprint.Validate(r, storedFP) {
//	    http.Error(w, "unauthorized", http.StatusUnauthorized)
//	    return
//	}
//
// FromComponents covers call sites that only carry extracted request
// metadata rather than the request itself:
//
//	fp := fingerprint.FromComponents(ip, ua, lang, enc)
//
// The middleware computes the value once per request and exposes it via
// FromContext.
package fingerprint
