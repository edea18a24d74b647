package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/palrajin0126/admin-panel/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthTestServer(handlerCalled *bool) *echo.Echo {
	e := echo.New()
	e.GET("/carts", func(c echo.Context) error {
		*handlerCalled = true
		return c.NoContent(http.StatusOK)
	}, IsLoggedIn(testSecret))
	return e
}

func TestMissingTokenRejectedBeforeHandler(t *testing.T) {
	handlerCalled := false
	e := newAuthTestServer(&handlerCalled)

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, handlerCalled)
}

func TestInvalidTokenRejectedBeforeHandler(t *testing.T) {
	handlerCalled := false
	e := newAuthTestServer(&handlerCalled)

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, handlerCalled)
}

func TestTokenSignedWithWrongSecretRejected(t *testing.T) {
	handlerCalled := false
	e := newAuthTestServer(&handlerCalled)

	token, err := utils.CreateJWTToken("user-1", "admin", "another-secret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, handlerCalled)
}

func TestValidTokenPassesThrough(t *testing.T) {
	handlerCalled := false
	e := newAuthTestServer(&handlerCalled)

	token, err := utils.CreateJWTToken("user-1", "admin", testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, handlerCalled)
}
