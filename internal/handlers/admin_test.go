package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rheumassoc/api/internal/models"
)

func adminContext(t *testing.T, method, body string, targetID string, actor models.User) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: targetID}}
	c.Set("current_user", actor)
	return c, rec
}

func TestAdminUpdateUserRoleSelfDenied(t *testing.T) {
	h := HandlerSet{log: zerolog.Nop()}
	actor := models.User{ID: 5, Role: models.UserRoleAdmin, IsActive: true}

	c, rec := adminContext(t, http.MethodPut, `{"role":"user"}`, "5", actor)
	h.AdminUpdateUserRole(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "self_modification_denied")
}

func TestAdminDeleteUserSelfDenied(t *testing.T) {
	h := HandlerSet{log: zerolog.Nop()}
	actor := models.User{ID: 7, Role: models.UserRoleAdmin, IsActive: true}

	c, rec := adminContext(t, http.MethodDelete, "", "7", actor)
	h.AdminDeleteUser(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "self_modification_denied")
}

func TestAdminUpdateUserRoleInvalidRole(t *testing.T) {
	h := HandlerSet{log: zerolog.Nop()}
	actor := models.User{ID: 1, Role: models.UserRoleAdmin, IsActive: true}

	c, rec := adminContext(t, http.MethodPut, `{"role":"superadmin"}`, "2", actor)
	h.AdminUpdateUserRole(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_role")
}

func TestStatsResponseKeys(t *testing.T) {
	data, err := json.Marshal(statsResponse{Users: 1, News: 2, Registrations: 3, Applications: 4})
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `"congressRegistrations":3`)
	assert.Contains(t, body, `"schoolApplications":4`)
	assert.Contains(t, body, `"users":1`)
	assert.Contains(t, body, `"news":2`)
}
