//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"stayspot/internal/handler/dto/request"
	"stayspot/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// SignupAndLogin registers a fresh account through the API and returns its
// access token.
func SignupAndLogin(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/signup",
		request.SignupRequest{Email: email, Password: DefaultPassword, Role: role}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return LoginUser(t, router, email, DefaultPassword)
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Extract access token from cookie
	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
