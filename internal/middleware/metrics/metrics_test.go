package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, r chi.Router, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/v1/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})

	t.Run("labels by route pattern, not raw URL", func(t *testing.T) {
		before := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/v1/users/{id}", "204"))

		w := serve(t, r, "/v1/users/42")
		require.Equal(t, http.StatusNoContent, w.Code)

		assert.Equal(t, before+1,
			testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/v1/users/{id}", "204")))
		assert.Zero(t,
			testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/v1/users/42", "204")))
	})

	t.Run("silent handler counts as 200", func(t *testing.T) {
		before := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200"))

		serve(t, r, "/healthz")

		assert.Equal(t, before+1,
			testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200")))
	})

	t.Run("in-flight gauge settles back to zero", func(t *testing.T) {
		serve(t, r, "/healthz")
		assert.Zero(t, testutil.ToFloat64(requestsInFlight))
	})
}
