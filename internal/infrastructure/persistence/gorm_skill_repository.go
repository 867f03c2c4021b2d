package persistence

import (
	"context"
	"fmt"

	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/persistence/models"
	"github.com/Azu-ul/portfolio-back/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSkillRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSkillRepository creates a new GORM-based skills.Repository implementation
func NewGormSkillRepository(db *gorm.DB, logger logger.Logger) (skills.Repository, error) {
	return &gormSkillRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSkillRepository) List(ctx context.Context) ([]*skills.Skill, error) {
	if !r.db.WithContext(ctx).Migrator().HasTable(&models.SkillModel{}) {
		r.logger.Warn("skills table does not exist, returning empty list")
		return []*skills.Skill{}, nil
	}

	var modelList []*models.SkillModel
	err := r.db.WithContext(ctx).
		Order("parent_category ASC").
		Order("level DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}

	domainList := make([]*skills.Skill, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormSkillRepository) Create(ctx context.Context, skill *skills.Skill) error {
	if err := skill.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SkillModel{}
	model.FromDomain(skill)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}

	skill.ID = model.ID
	r.logger.Info("Created skill with id ", model.ID)
	return nil
}

func (r *gormSkillRepository) UpdateByID(ctx context.Context, skill *skills.Skill) (*skills.Skill, error) {
	if err := skill.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.SkillModel{}).
		Where("id = ?", skill.ID).
		Updates(map[string]interface{}{
			"type":            skill.Type,
			"parent_category": skill.ParentCategory,
			"name":            skill.Name,
			"level":           skill.Level,
			"description":     skill.Description,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update skill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, skills.ErrNotFound
	}

	var model models.SkillModel
	if err := r.db.WithContext(ctx).Where("id = ?", skill.ID).Take(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch updated skill: %w", err)
	}

	r.logger.Info("Updated skill with id ", skill.ID)
	return model.ToDomain(), nil
}

func (r *gormSkillRepository) DeleteByID(ctx context.Context, skillID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", skillID).Delete(&models.SkillModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete skill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return skills.ErrNotFound
	}

	r.logger.Info("Deleted skill with id ", skillID)
	return nil
}

func (r *gormSkillRepository) ListSoft(ctx context.Context) ([]*skills.SoftSkill, error) {
	if !r.db.WithContext(ctx).Migrator().HasTable(&models.SoftSkillModel{}) {
		r.logger.Warn("soft_skills table does not exist, returning empty list")
		return []*skills.SoftSkill{}, nil
	}

	var modelList []*models.SoftSkillModel
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch soft skills: %w", err)
	}

	domainList := make([]*skills.SoftSkill, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
