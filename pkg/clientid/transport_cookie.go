package clientid

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/listingkit/pkg/cookie"
)

// DefaultCookie is the cookie holding the browser profile id.
const DefaultCookie = "listingkit_client"

// CookieTransport implements Transport using cookies
type CookieTransport struct {
	cookies *cookie.Manager
	name    string
	options []cookie.Option
}

// NewCookieTransport creates a new cookie-based transport. Security
// attributes come from the cookie manager defaults; opts override them.
func NewCookieTransport(cookies *cookie.Manager, name string, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookies: cookies,
		name:    name,
		options: opts,
	}
}

// GetID extracts the client id from the cookie
func (t *CookieTransport) GetID(r *http.Request) (string, error) {
	id, err := t.cookies.Get(r, t.name)
	if err != nil || id == "" {
		return "", ErrNotFound
	}
	return id, nil
}

// SetID stores the client id in a cookie that lives for ttl.
func (t *CookieTransport) SetID(w http.ResponseWriter, id string, ttl time.Duration) error {
	opts := append([]cookie.Option{cookie.WithMaxAge(int(ttl.Seconds()))}, t.options...)
	return t.cookies.Set(w, t.name, id, opts...)
}
