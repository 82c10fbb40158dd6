// Package cookie manages HTTP cookies with optional tamper detection.
//
// A Manager holds one or more HMAC secrets and a set of default cookie
// attributes (Path, HttpOnly, SameSite=Lax out of the box). Signed
// cookies embed an HMAC-SHA256 signature next to the base64-encoded
// value; a client that edits the value fails verification on the next
// request. Signing does not hide the value — session tokens are opaque
// random strings, so confidentiality adds nothing here.
//
// Key rotation is supported by passing multiple secrets: the first signs
// new cookies, all of them are accepted during verification, so old
// cookies survive a rotation window. Signature comparison is
// constant-time.
//
// # Usage
//
//	mgr, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mgr.SetSigned(w, "sid", token, cookie.WithMaxAge(86400))
//
//	token, err := mgr.GetSigned(r, "sid")
//	if errors.Is(err, cookie.ErrInvalidSignature) {
//	    // tampered or signed with an unknown key
//	}
package cookie
