package users

import "errors"

var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("usuario no encontrado")

	// ErrEmailTaken indicates a registration against an already used email.
	ErrEmailTaken = errors.New("el email ya está registrado")

	// ErrInvalidCredentials indicates a login with unknown email or wrong password.
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	// ErrTokenInvalid indicates a bearer token that is malformed, tampered or expired.
	ErrTokenInvalid = errors.New("token inválido")
)
