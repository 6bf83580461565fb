package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRole(t *testing.T, role interface{}, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := RequireRole(allowed...)(next)(c)
	require.NoError(t, err)
	return rec
}

func TestRequireRoleAllows(t *testing.T) {
	rec := runRole(t, "admin", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	rec := runRole(t, "user", "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	rec := runRole(t, nil, "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsNonStringRole(t *testing.T) {
	rec := runRole(t, 12, "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleMultipleAllowed(t *testing.T) {
	rec := runRole(t, "user", "user", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}
