// Package cookie provides a small HTTP cookie manager with shared defaults.
//
// A Manager carries default Options (path, domain, max age, Secure,
// HttpOnly, SameSite) that every cookie it writes starts from. Per-call
// options override the defaults without modifying them.
//
// # Usage
//
//	man := cookie.New(cookie.WithSecure(true))
//
//	_ = man.Set(w, "listingkit_client", id, cookie.WithMaxAge(3600))
//	id, err := man.Get(r, "listingkit_client")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//	    // first visit
//	}
//
// # Configuration
//
// Config is read from the environment with pkg/config:
//
//	cfg, _ := config.Load[cookie.Config]()
//	man := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// Get returns ErrCookieNotFound when the request carries no cookie with the
// given name.
package cookie
