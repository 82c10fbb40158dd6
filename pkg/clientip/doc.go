// Package clientip extracts the originating client's IP address from an
// *http.Request for applications deployed behind one or more reverse
// proxies.
//
// Production deployments of the payroll backend sit behind Cloudflare, so
// CF-Connecting-IP takes priority, followed by the standard proxy headers:
//
//	1. CF-Connecting-IP – Cloudflare edge
//	2. X-Forwarded-For  – comma-separated chain (first valid IP is used)
//	3. X-Real-IP        – set by reverse proxies such as Nginx
//	4. RemoteAddr       – TCP peer address as a fallback
//
// Every candidate is validated with net.ParseIP before use; spoofable
// garbage in a header falls through to the next source rather than being
// returned verbatim.
//
// # Usage
//
//	ip := clientip.Resolve(r) // *http.Request
//
// Or install the middleware once and read the value downstream:
//
//	http.Handle("/", clientip.Middleware(handler))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    ip := clientip.FromContext(r.Context())
//	    ...
//	}
package clientip
