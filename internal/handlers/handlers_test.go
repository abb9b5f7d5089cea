package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"rheumassoc/api/internal/repository"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestPaginationDefaults(t *testing.T) {
	skip, limit := pagination(contextWithQuery(""))
	assert.Equal(t, 0, skip)
	assert.Equal(t, defaultLimit, limit)
}

func TestPaginationClampsLimit(t *testing.T) {
	skip, limit := pagination(contextWithQuery("skip=10&limit=500"))
	assert.Equal(t, 10, skip)
	assert.Equal(t, maxLimit, limit)

	_, limit = pagination(contextWithQuery("limit=0"))
	assert.Equal(t, defaultLimit, limit)

	_, limit = pagination(contextWithQuery("limit=-3"))
	assert.Equal(t, defaultLimit, limit)
}

func TestPaginationNegativeSkip(t *testing.T) {
	skip, _ := pagination(contextWithQuery("skip=-5"))
	assert.Equal(t, 0, skip)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("0")
	assert.Error(t, err)

	_, err = parseID("-1")
	assert.Error(t, err)

	_, err = parseID("abc")
	assert.Error(t, err)
}

func TestListOptionsIncludeInactive(t *testing.T) {
	opts := listOptions(contextWithQuery("include_inactive=true&skip=5&limit=10"))
	assert.True(t, opts.IncludeInactive)
	assert.Equal(t, 5, opts.Skip)
	assert.Equal(t, 10, opts.Limit)

	opts = listOptions(contextWithQuery(""))
	assert.False(t, opts.IncludeInactive)
}

func TestParentNotFoundOrInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := HandlerSet{log: zerolog.Nop()}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("POST", "/", nil)
	h.parentNotFoundOrInternal(c, repository.ErrParentNotFound, "disease_not_found", "create disease document failed")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "disease_not_found")

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("POST", "/", nil)
	h.parentNotFoundOrInternal(c, errors.New("boom"), "disease_not_found", "create disease document failed")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
