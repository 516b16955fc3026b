package clientid

import (
	"net/http"
	"strings"
	"time"
)

// DefaultHeader lets non-browser clients pass the profile id explicitly.
const DefaultHeader = "X-Client-ID"

// HeaderTransport implements Transport using HTTP headers
type HeaderTransport struct {
	name string
}

// NewHeaderTransport creates a new header-based transport
func NewHeaderTransport(name string) *HeaderTransport {
	return &HeaderTransport{name: name}
}

// GetID extracts the client id from the request header
func (t *HeaderTransport) GetID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.Header.Get(t.name))
	if id == "" {
		return "", ErrNotFound
	}
	return id, nil
}

// SetID echoes the client id in the response header. ttl is ignored; the
// client decides how long to keep it.
func (t *HeaderTransport) SetID(w http.ResponseWriter, id string, _ time.Duration) error {
	w.Header().Set(t.name, id)
	return nil
}
