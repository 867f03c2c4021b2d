package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azu-ul/portfolio-back/internal/domain/users"
	"github.com/Azu-ul/portfolio-back/internal/pkg/logger"
)

// authService implements the users.AuthService interface
type authService struct {
	userRepo users.Repository
	hasher   users.PasswordHasher
	tokens   users.TokenService
	logger   logger.Logger
}

// NewAuthService creates a new authService instance.
//
// Note: ResetPassword intentionally mirrors the public API contract and
// carries no proof-of-ownership step (no emailed token or OTP). Deployments
// exposed beyond a single trusted admin should put the route behind an
// out-of-band verification flow.
func NewAuthService(
	userRepo users.Repository,
	hasher users.PasswordHasher,
	tokens users.TokenService,
	logger logger.Logger,
) (users.AuthService, error) {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}, nil
}

func (s *authService) Register(ctx context.Context, nombre, apellido, email, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users.User{
		Nombre:   nombre,
		Apellido: apellido,
		Email:    email,
		Password: hash,
		RolID:    users.DefaultRoleID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Registered user with id ", user.ID)
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to callers.
		if errors.Is(err, users.ErrNotFound) {
			return "", "", users.ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("failed to fetch user: %w", err)
	}

	if !s.hasher.Verify(password, user.Password) {
		return "", "", users.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(users.Claims{
		ID:    user.ID,
		Email: user.Email,
		Rol:   user.Rol,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user.Rol, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID int64, newPassword string) error {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePasswordByID(ctx, userID, hash)
}

func (s *authService) ResetPassword(ctx context.Context, email, newPassword string) error {
	// Surface unknown accounts before touching the password.
	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePasswordByEmail(ctx, email, hash)
}

func (s *authService) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

func (s *authService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.userRepo.EmailExists(ctx, email)
}
