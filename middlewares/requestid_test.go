package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuverum/contact-api/middlewares"
)

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	t.Parallel()

	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = middlewares.GetRequestID(r.Context())
	})

	rec := httptest.NewRecorder()
	middlewares.RequestID()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	require.NotEmpty(t, captured)
	assert.Equal(t, captured, rec.Header().Get("X-Request-ID"))

	_, err := uuid.Parse(captured)
	assert.NoError(t, err, "generated request ID should be a UUID")
}

func TestRequestIDPreservesInboundID(t *testing.T) {
	t.Parallel()

	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = middlewares.GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Correlation-ID", "upstream-42")

	rec := httptest.NewRecorder()
	middlewares.RequestID()(next).ServeHTTP(rec, req)

	assert.Equal(t, "upstream-42", captured)
	assert.Equal(t, "upstream-42", rec.Header().Get("X-Request-ID"))
}

func TestGetRequestIDEmptyWithoutMiddleware(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, middlewares.GetRequestID(req.Context()))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	extractor := middlewares.RequestIDExtractor()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := extractor(req.Context())
	assert.False(t, ok, "no attribute without a request ID in context")
}
