package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rheumassoc/api/internal/config"
	"rheumassoc/api/internal/models"
	"rheumassoc/api/internal/repository"
	"rheumassoc/api/internal/service"
)

type memoryUserStore struct {
	users  map[string]models.User
	nextID int64
}

func (m *memoryUserStore) Create(_ context.Context, user models.User) (models.User, error) {
	if _, exists := m.users[user.Email]; exists {
		return models.User{}, repository.ErrDuplicateEmail
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.users[user.Email] = user
	return user, nil
}

func (m *memoryUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return user, nil
}

func authHandlerSet() HandlerSet {
	cfg := &config.AppConfig{
		Security: config.SecurityConfig{
			JWTSecret: "auth-handler-test-secret",
			JWTTTL:    30 * time.Minute,
		},
	}
	store := &memoryUserStore{users: make(map[string]models.User)}
	return HandlerSet{
		log:         zerolog.Nop(),
		cfg:         cfg,
		authService: service.NewAuthService(store, cfg, zerolog.Nop()),
	}
}

func jsonContext(t *testing.T, method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, rec
}

func TestRegisterUserReturnsOK(t *testing.T) {
	h := authHandlerSet()

	c, rec := jsonContext(t, http.MethodPost, `{
		"email": "doctor@example.com",
		"password": "strong-password",
		"last_name": "Karimova",
		"first_name": "Nilufar"
	}`)
	h.RegisterUser(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"doctor@example.com"`)
	assert.Contains(t, rec.Body.String(), `"full_name"`)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	h := authHandlerSet()

	body := `{"email":"doctor@example.com","password":"strong-password","last_name":"Karimova","first_name":"Nilufar"}`
	c, rec := jsonContext(t, http.MethodPost, body)
	h.RegisterUser(c)
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = jsonContext(t, http.MethodPost, body)
	h.RegisterUser(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email_already_registered")
}

func TestRegisterUserShortName(t *testing.T) {
	h := authHandlerSet()

	c, rec := jsonContext(t, http.MethodPost, `{"email":"doctor@example.com","password":"strong-password","last_name":"K","first_name":"Nilufar"}`)
	h.RegisterUser(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name_too_short")
}
