package users

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Role names as stored in the roles lookup table.
const (
	RoleAdmin = "admin"
	RoleUser  = "usuario"
)

// DefaultRoleID is the role assigned to new registrations ("usuario").
const DefaultRoleID = 2

// User entity. The password holds a one-way hash and is never serialized.
type User struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre" validate:"required,min=1,max=100"`
	Apellido string `json:"apellido" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"-"`
	RolID    int64  `json:"rol_id"`
	Rol      string `json:"rol"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Rol == RoleAdmin
}

// Claims are the identity attributes encoded into a bearer token.
type Claims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Rol   string `json:"rol"`
}

// IsAdmin reports whether the claims carry the admin role.
func (c *Claims) IsAdmin() bool {
	return c.Rol == RoleAdmin
}
