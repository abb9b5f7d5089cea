package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rheumassoc/api/internal/config"
	"rheumassoc/api/internal/models"
	"rheumassoc/api/internal/repository"
	"rheumassoc/api/internal/security"
)

type fakeUserStore struct {
	users  map[string]models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) (models.User, error) {
	if _, exists := f.users[user.Email]; exists {
		return models.User{}, repository.ErrDuplicateEmail
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return user, nil
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Security: config.SecurityConfig{
			JWTSecret: "auth-service-test-secret",
			JWTTTL:    30 * time.Minute,
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testConfig(), zerolog.Nop())

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:     "Doctor@Example.com",
		Password:  "strong-password",
		LastName:  "Karimova",
		FirstName: "Nilufar",
	})
	require.NoError(t, err)
	assert.Equal(t, "doctor@example.com", user.Email)
	assert.Equal(t, models.UserRoleUser, user.Role)
	assert.True(t, user.IsActive)

	token, loggedIn, err := svc.Login(context.Background(), "doctor@example.com", "strong-password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := security.ParseToken(token, "auth-service-test-secret")
	require.NoError(t, err)
	assert.Equal(t, "doctor@example.com", claims.Email())
	assert.Equal(t, string(models.UserRoleUser), claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testConfig(), zerolog.Nop())

	input := RegisterInput{
		Email:     "doctor@example.com",
		Password:  "strong-password",
		LastName:  "Karimova",
		FirstName: "Nilufar",
	}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testConfig(), zerolog.Nop())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:     "doctor@example.com",
		Password:  "strong-password",
		LastName:  "Karimova",
		FirstName: "Nilufar",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "doctor@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testConfig(), zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testConfig(), zerolog.Nop())

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:     "doctor@example.com",
		Password:  "strong-password",
		LastName:  "Karimova",
		FirstName: "Nilufar",
	})
	require.NoError(t, err)

	user.IsActive = false
	store.users[user.Email] = user

	_, _, err = svc.Login(context.Background(), "doctor@example.com", "strong-password")
	assert.ErrorIs(t, err, ErrUserInactive)
}
