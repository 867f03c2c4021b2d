package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Azu-ul/portfolio-back/internal/domain/users"
)

// claimsContextKey is the gin context key the verified claims live under.
const claimsContextKey = "authClaims"

// AuthRequired verifies the bearer token of the request. A missing or
// malformed Authorization header yields 401; a token that fails
// verification (signature, structure or expiry) yields 403. On success
// the decoded claims are attached to the gin context.
func AuthRequired(tokens users.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "No autorizado"})
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Token inválido"})
			return
		}

		ctx.Set(claimsContextKey, claims)
		ctx.Next()
	}
}

// AdminRequired gates a route to administrator identities. It must run
// after AuthRequired; a request that reaches it without claims yields 401.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := ClaimsFromContext(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "No autorizado"})
			return
		}

		if !claims.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Acceso denegado: solo para administradores"})
			return
		}

		ctx.Next()
	}
}

// ClaimsFromContext returns the claims attached by AuthRequired.
func ClaimsFromContext(ctx *gin.Context) (*users.Claims, bool) {
	value, exists := ctx.Get(claimsContextKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*users.Claims)
	return claims, ok
}
