// Package clientid assigns every browser profile a stable random identifier.
//
// The identifier scopes per-profile state (device id, cached seller details,
// submission cooldown) on a server that serves many browsers. It travels
// through a Transport: a cookie for browsers, a header for API clients, or a
// CompositeTransport that tries both.
//
// # Architecture
//
// Middleware asks the Transport for an existing id. A missing or malformed
// id is replaced by a fresh UUID, which is written back through the same
// Transport. The id is stored in the request context for handlers and for
// log records via LogExtractor.
//
//	cookies := cookie.NewFromConfig(cookieCfg)
//	transport := clientid.NewCompositeTransport(
//	    clientid.NewHeaderTransport(clientid.DefaultHeader),
//	    clientid.NewCookieTransport(cookies, clientid.DefaultCookie),
//	)
//	r.Use(clientid.Middleware(transport))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    id := clientid.FromContext(r.Context())
//	    _ = id
//	}
package clientid
