//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Azu-ul/portfolio-back/internal/domain/users"
)

func TestAuthRequired_MissingHeader_Unauthorized(t *testing.T) {
	mockTokenService := new(MockTokenService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/auth/me", nil)

	AuthRequired(mockTokenService)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No autorizado")
	assert.True(t, c.IsAborted())
}

func TestAuthRequired_MalformedHeader_Unauthorized(t *testing.T) {
	mockTokenService := new(MockTokenService)

	for _, header := range []string{"tokenwithoutscheme", "Basic abc123", "Bearer "} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("GET", "/api/auth/me", nil)
		c.Request.Header.Set("Authorization", header)

		AuthRequired(mockTokenService)(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthRequired_InvalidToken_Forbidden(t *testing.T) {
	mockTokenService := new(MockTokenService)
	mockTokenService.On("Verify", "bad-token").Return(nil, users.ErrTokenInvalid)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/auth/me", nil)
	c.Request.Header.Set("Authorization", "Bearer bad-token")

	AuthRequired(mockTokenService)(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido")
	mockTokenService.AssertExpectations(t)
}

func TestAuthRequired_ValidToken_AttachesClaims(t *testing.T) {
	mockTokenService := new(MockTokenService)
	claims := &users.Claims{ID: 7, Email: "clara@example.com", Rol: users.RoleAdmin}
	mockTokenService.On("Verify", "good-token").Return(claims, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/auth/me", nil)
	c.Request.Header.Set("Authorization", "Bearer good-token")

	AuthRequired(mockTokenService)(c)

	assert.False(t, c.IsAborted())
	attached, ok := ClaimsFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, claims, attached)
}

func TestAdminRequired_NoClaims_Unauthorized(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/admin/projects", nil)

	AdminRequired()(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired_NonAdmin_Forbidden(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/admin/projects", nil)
	c.Set(claimsContextKey, &users.Claims{ID: 7, Email: "clara@example.com", Rol: users.RoleUser})

	AdminRequired()(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Acceso denegado: solo para administradores")
}

func TestAdminRequired_Admin_Passes(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/admin/projects", nil)
	c.Set(claimsContextKey, &users.Claims{ID: 1, Email: "admin@example.com", Rol: users.RoleAdmin})

	AdminRequired()(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
}
