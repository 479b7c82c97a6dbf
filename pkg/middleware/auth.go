package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/pkg/auth"
	"github.com/shashiranjanraj/rabbit/pkg/response"
)

// userKey is the unexported key under which the resolved user is stored.
type userKey struct{}

// UserLoader resolves a token subject (user id hex) to the full user record.
type UserLoader func(ctx context.Context, id string) (*models.User, error)

// CurrentUser returns the user attached by Protect, or nil.
func CurrentUser(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey{}).(*models.User)
	return u
}

// WithUser stores a user in ctx. Exported for handler tests.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// BearerToken extracts the token from an Authorization header, or "".
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// Protect verifies the bearer token, loads the corresponding user and
// attaches it to the request. Missing header, bad signature, expired token
// and unknown user all halt the request with a 401.
func Protect(tokens *auth.JWT, load UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				response.Error(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			user, err := load(r.Context(), claims.UserID)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// Admin rejects requests whose resolved user does not hold the admin role.
// Must run after Protect.
func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r.Context())
		if user == nil || !user.IsAdmin() {
			response.Error(w, http.StatusForbidden, "Not authorized as admin")
			return
		}
		next.ServeHTTP(w, r)
	})
}
