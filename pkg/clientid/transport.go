package clientid

import (
	"net/http"
	"time"
)

// Transport defines how client ids are transmitted between client and server
type Transport interface {
	// GetID extracts the client id from the request
	GetID(r *http.Request) (string, error)

	// SetID sends the client id in the response
	SetID(w http.ResponseWriter, id string, ttl time.Duration) error
}
