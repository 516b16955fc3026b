package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listingkit/pkg/requestid"
)

func serve(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "missing", incoming: "", reused: false},
		{name: "uuid", incoming: "550e8400-e29b-41d4-a716-446655440000", reused: true},
		{name: "token", incoming: "listing_submit-42", reused: true},
		{name: "spaces", incoming: "two words", reused: false},
		{name: "markup", incoming: "<script>", reused: false},
		{name: "too long", incoming: strings.Repeat("a", 129), reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctxID, headerID := serve(t, tt.incoming)
			assert.Equal(t, ctxID, headerID)
			if tt.reused {
				assert.Equal(t, tt.incoming, ctxID)
				return
			}
			assert.NotEqual(t, tt.incoming, ctxID)
			_, err := uuid.Parse(ctxID)
			assert.NoError(t, err)
		})
	}
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()

	_, ok := requestid.LogExtractor(context.Background())
	assert.False(t, ok)

	attr, ok := requestid.LogExtractor(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
