package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rheumassoc/api/internal/models"
	"rheumassoc/api/internal/repository"
	"rheumassoc/api/internal/security"
)

const authTestSecret = "middleware-test-secret"

type fakeUserFinder struct {
	users map[string]models.User
}

func (f fakeUserFinder) FindByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return user, nil
}

func authTestRouter(finder UserFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", Auth(authTestSecret, finder), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, user)
	})
	router.GET("/admin", Auth(authTestSecret, finder), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMissingToken(t *testing.T) {
	router := authTestRouter(fakeUserFinder{})
	rec := doRequest(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_token")
}

func TestAuthInvalidToken(t *testing.T) {
	router := authTestRouter(fakeUserFinder{})
	rec := doRequest(router, "/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_token")
}

func TestAuthUnknownUser(t *testing.T) {
	token, err := security.IssueToken(authTestSecret, "ghost@example.com", "user", time.Minute)
	require.NoError(t, err)

	router := authTestRouter(fakeUserFinder{users: map[string]models.User{}})
	rec := doRequest(router, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_not_found")
}

func TestAuthInactiveUser(t *testing.T) {
	token, err := security.IssueToken(authTestSecret, "doctor@example.com", "user", time.Minute)
	require.NoError(t, err)

	finder := fakeUserFinder{users: map[string]models.User{
		"doctor@example.com": {ID: 1, Email: "doctor@example.com", Role: models.UserRoleUser, IsActive: false},
	}}
	rec := doRequest(authTestRouter(finder), "/me", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_inactive")
}

func TestAuthLoadsCurrentUser(t *testing.T) {
	token, err := security.IssueToken(authTestSecret, "doctor@example.com", "user", time.Minute)
	require.NoError(t, err)

	finder := fakeUserFinder{users: map[string]models.User{
		"doctor@example.com": {ID: 42, Email: "doctor@example.com", Role: models.UserRoleUser, IsActive: true},
	}}
	rec := doRequest(authTestRouter(finder), "/me", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
}

func TestRequireAdminRejectsUser(t *testing.T) {
	token, err := security.IssueToken(authTestSecret, "doctor@example.com", "user", time.Minute)
	require.NoError(t, err)

	finder := fakeUserFinder{users: map[string]models.User{
		"doctor@example.com": {ID: 1, Email: "doctor@example.com", Role: models.UserRoleUser, IsActive: true},
	}}
	rec := doRequest(authTestRouter(finder), "/admin", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "forbidden")
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	token, err := security.IssueToken(authTestSecret, "admin@example.com", "admin", time.Minute)
	require.NoError(t, err)

	finder := fakeUserFinder{users: map[string]models.User{
		"admin@example.com": {ID: 1, Email: "admin@example.com", Role: models.UserRoleAdmin, IsActive: true},
	}}
	rec := doRequest(authTestRouter(finder), "/admin", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuthContinuesWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/open", OptionalAuth(authTestSecret, fakeUserFinder{}), func(c *gin.Context) {
		_, ok := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_loaded": ok})
	})

	rec := doRequest(router, "/open", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_loaded":false`)

	rec = doRequest(router, "/open", "broken-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_loaded":false`)
}
