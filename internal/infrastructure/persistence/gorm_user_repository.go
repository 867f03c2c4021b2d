package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azu-ul/portfolio-back/internal/domain/users"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/persistence/models"
	"github.com/Azu-ul/portfolio-back/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based users.Repository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.Repository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = model.ID
	r.logger.Info("Created user with id ", model.ID)
	return nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Table("usuarios").
		Select("usuarios.*, roles.nombre AS rol").
		Joins("JOIN roles ON roles.id = usuarios.rol_id").
		Where("usuarios.email = ?", email).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) UpdatePasswordByID(ctx context.Context, userID int64, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", userID).
		Update("password", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return users.ErrNotFound
	}

	r.logger.Info("Updated password for user id ", userID)
	return nil
}

func (r *gormUserRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ?", email).
		Update("password", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return users.ErrNotFound
	}

	r.logger.Info("Updated password for user ", email)
	return nil
}

func (r *gormUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}
