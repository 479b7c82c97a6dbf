package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/app/services"
	"github.com/shashiranjanraj/rabbit/pkg/auth"
)

// fakeUsers is an in-memory UserStore with the repository's uniqueness
// behavior on email.
type fakeUsers struct {
	users []*models.User
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return models.ErrAlreadyExists
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUsers) Update(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email && u.ID != user.ID {
			return models.ErrAlreadyExists
		}
	}
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return models.ErrNotFound
}

func newAuthFixture() (*services.AuthService, *fakeUsers, *auth.JWT) {
	users := &fakeUsers{}
	tokens := auth.NewJWTWithTTL("test-secret", time.Hour)
	return services.NewAuthService(users, tokens), users, tokens
}

func TestRegister(t *testing.T) {
	svc, _, tokens := newAuthFixture()

	user, token, err := svc.Register(context.Background(), "Jordan", "jordan@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password is stored hashed")

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, models.RoleCustomer, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, _, err := svc.Register(context.Background(), "Jordan", "jordan@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "Other", "jordan@example.com", "secret456")
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthFixture()

	registered, _, err := svc.Register(context.Background(), "Jordan", "jordan@example.com", "secret123")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "jordan@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, _, err := svc.Register(context.Background(), "Jordan", "jordan@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "jordan@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	user, _, err := svc.Register(context.Background(), "Jordan", "jordan@example.com", "secret123")
	require.NoError(t, err)
	oldHash := user.Password

	updated, err := svc.UpdateProfile(context.Background(), user, "Jordan K", "", "newsecret")
	require.NoError(t, err)

	assert.Equal(t, "Jordan K", updated.Name)
	assert.Equal(t, "jordan@example.com", updated.Email, "empty email leaves the old one")
	assert.NotEqual(t, oldHash, updated.Password)
	assert.True(t, auth.CheckPassword(updated.Password, "newsecret"))
}
