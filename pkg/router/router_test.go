package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/rabbit/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	r.Get("/products/{id}", "products.show", ok)

	url, err := r.URL("products.show", map[string]string{"id": "42"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/products/42" {
		t.Errorf("url = %q, want /products/42", url)
	}
}

func TestURLMissingParam(t *testing.T) {
	r := router.New()
	r.Get("/products/{id}", "products.show", ok)

	if _, err := r.URL("products.show", nil); err == nil {
		t.Error("expected error for missing param")
	}
}

func TestURLUnknownRoute(t *testing.T) {
	r := router.New()
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route")
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var sawMiddleware bool
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawMiddleware = true
			next.ServeHTTP(w, r)
		})
	}

	r := router.New()
	g := r.Group("/api/admin", mw)
	g.Get("/users", "admin.users", ok)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !sawMiddleware {
		t.Error("group middleware did not run")
	}

	path, okPath := r.Path("admin.users")
	if !okPath || path != "/api/admin/users" {
		t.Errorf("path = %q, want /api/admin/users", path)
	}
}

func TestNotFoundHandler(t *testing.T) {
	r := router.New()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Route Not Found"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMethodVerbs(t *testing.T) {
	r := router.New()
	r.Put("/x", "x.put", ok)
	r.Patch("/x", "x.patch", ok)
	r.Delete("/x", "x.delete", ok)

	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
		req := httptest.NewRequest(method, "/x", nil)
		rec := httptest.NewRecorder()
		r.Handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s /x status = %d, want 200", method, rec.Code)
		}
	}
}
