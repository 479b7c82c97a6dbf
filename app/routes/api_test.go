package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/rabbit/app/controllers"
	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/app/routes"
	"github.com/shashiranjanraj/rabbit/app/services"
	"github.com/shashiranjanraj/rabbit/pkg/auth"
	"github.com/shashiranjanraj/rabbit/pkg/router"
)

type noProducts struct{}

func (noProducts) FindByID(context.Context, string) (*models.Product, error) {
	return nil, models.ErrNotFound
}

type noCarts struct{}

func (noCarts) FindByOwner(context.Context, models.Owner) (*models.Cart, error) {
	return nil, models.ErrNotFound
}
func (noCarts) Save(context.Context, *models.Cart) error   { return nil }
func (noCarts) Delete(context.Context, *models.Cart) error { return nil }

// testHandler mounts the full route table with a working cart controller.
// The other controllers are never reached by these requests.
func testHandler() http.Handler {
	tokens := auth.NewJWTWithTTL("test-secret", time.Hour)
	cart := controllers.NewCartController(services.NewCartService(noProducts{}, noCarts{}), tokens)

	r := router.New()
	routes.Register(r, routes.API{
		Cart:   cart,
		Tokens: tokens,
		LoadUser: func(context.Context, string) (*models.User, error) {
			return nil, models.ErrNotFound
		},
	})
	return r.Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp["message"]
}

// The cart mutations answer on their action subpaths, not only on the
// collection root. Reaching the controller (a domain 404, not the router's
// catch-all) proves the mount.
func TestCartMutationRoutes(t *testing.T) {
	h := testHandler()
	item := `{"productId":"` + primitive.NewObjectID().Hex() + `","quantity":1,"guestId":"g1"}`

	cases := []struct {
		method, target, want string
	}{
		{http.MethodPost, "/api/cart/add", "Product not found"},
		{http.MethodPut, "/api/cart/update", "Cart not found"},
		{http.MethodDelete, "/api/cart/remove", "Cart not found"},
		{http.MethodPost, "/api/cart", "Product not found"},
		{http.MethodPut, "/api/cart", "Cart not found"},
		{http.MethodDelete, "/api/cart", "Cart not found"},
	}
	for _, tc := range cases {
		code, msg := do(t, h, tc.method, tc.target, item)
		assert.Equal(t, http.StatusNotFound, code, "%s %s", tc.method, tc.target)
		assert.Equal(t, tc.want, msg, "%s %s", tc.method, tc.target)
	}
}

func TestUnknownRoute(t *testing.T) {
	code, msg := do(t, testHandler(), http.MethodGet, "/api/nope", "")

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Route Not Found", msg)
}
