package users

import (
	"context"
)

// AuthService defines the account and session operations exposed over HTTP.
type AuthService interface {
	// Register creates a new user with the default role. The plaintext
	// password is hashed before it reaches storage.
	Register(ctx context.Context, nombre, apellido, email, password string) error

	// Login verifies the credentials and issues a signed bearer token.
	// It returns the token, the user's role and any error encountered.
	// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (token string, rol string, err error)

	// ChangePassword replaces the password of the authenticated user.
	ChangePassword(ctx context.Context, userID int64, newPassword string) error

	// ResetPassword replaces the password of the account registered under
	// email. There is no ownership proof step; see the service constructor.
	ResetPassword(ctx context.Context, email, newPassword string) error

	// GetByEmail fetches the profile of a user by email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// EmailExists reports whether an account is registered under email.
	EmailExists(ctx context.Context, email string) (bool, error)
}

// Repository defines the persistence operations for users.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePasswordByID(ctx context.Context, userID int64, passwordHash string) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

// PasswordHasher produces and verifies one-way password hashes.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of the plaintext. Two calls with
	// the same plaintext produce distinct hashes.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches a hash produced by Hash.
	Verify(plaintext, hash string) bool
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue produces a signed token encoding the claims and an expiry.
	Issue(claims Claims) (string, error)

	// Verify checks signature, structure and expiry. It returns the decoded
	// claims or an error wrapping ErrTokenInvalid.
	Verify(token string) (*Claims, error)
}
