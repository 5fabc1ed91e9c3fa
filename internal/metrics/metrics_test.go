package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/rfps/{rfpId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/api/rfps/1", "/api/rfps/2", "/api/rfps/3"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// Three requests with distinct ids collapse into one series keyed by
	// the route pattern.
	require.Equal(t, 1, testutil.CollectAndCount(HTTPRequestsTotal))
	count := testutil.ToFloat64(
		HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/rfps/{rfpId}", "200"))
	require.Equal(t, 3.0, count)
}

func TestMiddlewareFallsBackToRawPath(t *testing.T) {
	HTTPRequestsTotal.Reset()

	// Outside a chi router there is no route context; the raw path is
	// still recorded.
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	count := testutil.ToFloat64(
		HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics", "200"))
	require.Equal(t, 1.0, count)
}
