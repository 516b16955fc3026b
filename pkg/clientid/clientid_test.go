package clientid_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listingkit/pkg/clientid"
	"github.com/dmitrymomot/listingkit/pkg/cookie"
)

func newTransport() clientid.Transport {
	return clientid.NewCompositeTransport(
		clientid.NewHeaderTransport(clientid.DefaultHeader),
		clientid.NewCookieTransport(cookie.New(), clientid.DefaultCookie),
	)
}

func serve(t *testing.T, tr clientid.Transport, r *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var seen string
	h := clientid.Middleware(tr)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = clientid.FromContext(r.Context())
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w, seen
}

func TestMiddleware_IssuesID(t *testing.T) {
	t.Parallel()

	w, id := serve(t, newTransport(), httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	assert.Equal(t, id, w.Header().Get(clientid.DefaultHeader))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, clientid.DefaultCookie, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.Equal(t, int(clientid.DefaultTTL.Seconds()), cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}

func TestMiddleware_ReusesID(t *testing.T) {
	t.Parallel()
	id := uuid.NewString()

	t.Run("from cookie", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: clientid.DefaultCookie, Value: id})

		w, seen := serve(t, newTransport(), r)
		assert.Equal(t, id, seen)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(clientid.DefaultHeader, id)
		r.AddCookie(&http.Cookie{Name: clientid.DefaultCookie, Value: uuid.NewString()})

		_, seen := serve(t, newTransport(), r)
		assert.Equal(t, id, seen)
	})
}

func TestMiddleware_ReplacesMalformedID(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: clientid.DefaultCookie, Value: "../../etc"})

	w, seen := serve(t, newTransport(), r)
	assert.NotEqual(t, "../../etc", seen)
	require.Len(t, w.Result().Cookies(), 1)
}

type failingTransport struct{}

func (failingTransport) GetID(*http.Request) (string, error) { return "", clientid.ErrNotFound }

func (failingTransport) SetID(http.ResponseWriter, string, time.Duration) error {
	return errors.New("write failed")
}

func TestMiddleware_SetFailureStillServes(t *testing.T) {
	t.Parallel()

	_, seen := serve(t, failingTransport{}, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()

	_, ok := clientid.LogExtractor(context.Background())
	assert.False(t, ok)

	attr, ok := clientid.LogExtractor(clientid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "abc", attr.Value.String())
}
