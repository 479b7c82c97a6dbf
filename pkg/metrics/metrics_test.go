package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/rabbit/pkg/metrics"
	"github.com/shashiranjanraj/rabbit/pkg/router"
)

// Requests are labeled with the matched route pattern so that every product
// id does not mint a fresh time series.
func TestMiddlewareLabelsRoutePattern(t *testing.T) {
	r := router.New()
	r.Use(metrics.Middleware())
	r.Get("/products/{id}", "products.show", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"42", "43"} {
		req := httptest.NewRequest(http.MethodGet, "/products/"+id, nil)
		r.Handler().ServeHTTP(httptest.NewRecorder(), req)
	}

	rec := httptest.NewRecorder()
	metrics.Handler()(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `path="/products/{id}"`) {
		t.Error("expected requests to be labeled with the route pattern")
	}
	if strings.Contains(body, `path="/products/42"`) {
		t.Error("raw request paths must not appear as label values")
	}
}
