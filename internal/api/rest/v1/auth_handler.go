package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Azu-ul/portfolio-back/internal/domain/users"
)

// AuthHandler defines the interface for handling account and session operations
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
	ResetPassword(ctx *gin.Context)
	Me(ctx *gin.Context)
	CheckEmailExists(ctx *gin.Context)
}

// authHandler struct holds the services
type authHandler struct {
	authService users.AuthService
	devMode     bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, devMode bool) AuthHandler {
	return &authHandler{
		authService: authService,
		devMode:     devMode,
	}
}

func (handler *authHandler) fail(ctx *gin.Context, status int, message string, err error) {
	response := ErrorResponse{Error: message}
	if handler.devMode && err != nil {
		response.Details = err.Error()
	}
	ctx.JSON(status, response)
}

// Register creates a new account with the default role
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := request.Validate(); err != nil {
		handler.fail(ctx, http.StatusBadRequest, err.Error(), nil)
		return
	}

	err := handler.authService.Register(ctx, request.Nombre, request.Apellido, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			handler.fail(ctx, http.StatusBadRequest, "El email ya está registrado", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error al registrar el usuario", err)
		return
	}

	ctx.JSON(http.StatusCreated, InfoResponse{Message: "Usuario registrado con éxito"})
}

// Login verifies credentials and issues a signed token
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := request.Validate(); err != nil {
		handler.fail(ctx, http.StatusBadRequest, err.Error(), nil)
		return
	}

	token, rol, err := handler.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			handler.fail(ctx, http.StatusUnauthorized, "Credenciales inválidas", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error en el servidor", err)
		return
	}

	ctx.JSON(http.StatusOK, LoginResponse{
		Message: "Login exitoso",
		Token:   token,
		Rol:     rol,
	})
}

// ChangePassword replaces the password of the authenticated user
func (handler *authHandler) ChangePassword(ctx *gin.Context) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		handler.fail(ctx, http.StatusUnauthorized, "No autorizado", nil)
		return
	}

	var request ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if request.NewPassword != request.ConfirmPassword {
		handler.fail(ctx, http.StatusBadRequest, "Las contraseñas no coinciden", nil)
		return
	}

	if err := request.Validate(); err != nil {
		handler.fail(ctx, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := handler.authService.ChangePassword(ctx, claims.ID, request.NewPassword); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "Usuario no encontrado", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error interno del servidor", err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "Contraseña actualizada con éxito"})
}

// ResetPassword replaces the password of the account registered under the
// given email. The route carries no proof of account ownership.
func (handler *authHandler) ResetPassword(ctx *gin.Context) {
	var request ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if request.NewPassword != request.ConfirmPassword {
		handler.fail(ctx, http.StatusBadRequest, "Las contraseñas no coinciden", nil)
		return
	}

	if err := request.Validate(); err != nil {
		handler.fail(ctx, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := handler.authService.ResetPassword(ctx, request.Email, request.NewPassword); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "Usuario no encontrado con ese email", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error interno del servidor", err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "Contraseña reseteada con éxito"})
}

// Me returns the profile of the authenticated user
func (handler *authHandler) Me(ctx *gin.Context) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		handler.fail(ctx, http.StatusUnauthorized, "No autorizado", nil)
		return
	}

	user, err := handler.authService.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "Usuario no encontrado.", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error del servidor al obtener datos del usuario.", err)
		return
	}

	ctx.JSON(http.StatusOK, UserResponse{
		ID:       user.ID,
		Nombre:   user.Nombre,
		Apellido: user.Apellido,
		Email:    user.Email,
		Rol:      user.Rol,
	})
}

// CheckEmailExists reports whether an account exists for the email query
func (handler *authHandler) CheckEmailExists(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		handler.fail(ctx, http.StatusBadRequest, "email query parameter is required", nil)
		return
	}

	exists, err := handler.authService.EmailExists(ctx, email)
	if err != nil {
		handler.fail(ctx, http.StatusInternalServerError, "Error del servidor al verificar el email.", err)
		return
	}

	ctx.JSON(http.StatusOK, ExistsResponse{Exists: exists})
}
