package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/redlegion/sessionkit/pkg/clientip"
)

// Generate derives a device fingerprint from the HTTP request. It hashes
// the client IP, User-Agent and Accept-Language/Accept-Encoding headers
// into a 32-character hex string. The result is an anomaly signal for
// recognising the device a session was issued to; it is never a
// substitute for the session token itself.
func Generate(r *http.Request) string {
	return FromComponents(
		clientip.Resolve(r),
		r.UserAgent(),
		r.Header.Get("Accept-Language"),
		r.Header.Get("Accept-Encoding"),
	)
}

// FromComponents hashes pre-extracted request attributes. Empty components
// are kept in place so the output stays deterministic for clients that
// omit optional headers.
func FromComponents(ip, userAgent, acceptLanguage, acceptEncoding string) string {
	combined := strings.Join([]string{ip, userAgent, acceptLanguage, acceptEncoding}, "|")
	sum := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(sum[:16])
}

// Validate compares the fingerprint of the current request against a
// stored one.
func Validate(r *http.Request, stored string) bool {
	return Generate(r) == stored
}
