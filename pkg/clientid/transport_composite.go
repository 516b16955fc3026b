package clientid

import (
	"net/http"
	"time"
)

// CompositeTransport tries multiple transports in order
type CompositeTransport struct {
	transports []Transport
}

// NewCompositeTransport creates a composite transport that tries multiple transports
func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{transports: transports}
}

// GetID returns the id from the first transport that has one
func (t *CompositeTransport) GetID(r *http.Request) (string, error) {
	for _, transport := range t.transports {
		id, err := transport.GetID(r)
		if err == nil && id != "" {
			return id, nil
		}
	}
	return "", ErrNotFound
}

// SetID sends the id via all configured transports
func (t *CompositeTransport) SetID(w http.ResponseWriter, id string, ttl time.Duration) error {
	var lastErr error
	for _, transport := range t.transports {
		if err := transport.SetID(w, id, ttl); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
