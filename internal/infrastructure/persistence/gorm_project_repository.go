package persistence

import (
	"context"
	"fmt"

	"github.com/Azu-ul/portfolio-back/internal/domain/projects"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/persistence/models"
	"github.com/Azu-ul/portfolio-back/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProjectRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProjectRepository creates a new GORM-based projects.Repository implementation
func NewGormProjectRepository(db *gorm.DB, logger logger.Logger) (projects.Repository, error) {
	return &gormProjectRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProjectRepository) List(ctx context.Context) ([]*projects.Project, error) {
	// Partially provisioned environments may not have the table yet;
	// treat that as an empty portfolio rather than an error.
	if !r.db.WithContext(ctx).Migrator().HasTable(&models.ProjectModel{}) {
		r.logger.Warn("projects table does not exist, returning empty list")
		return []*projects.Project{}, nil
	}

	var modelList []*models.ProjectModel
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	domainList := make([]*projects.Project, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormProjectRepository) Create(ctx context.Context, project *projects.Project) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	project.ID = model.ID
	r.logger.Info("Created project with id ", model.ID)
	return nil
}

func (r *gormProjectRepository) UpdateByID(ctx context.Context, project *projects.Project) (*projects.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	// Full-field replace, not a partial patch.
	result := r.db.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"title":       project.Title,
			"description": project.Description,
			"url":         project.URL,
			"image":       project.Image,
			"category":    project.Category,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, projects.ErrNotFound
	}

	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", project.ID).Take(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch updated project: %w", err)
	}

	r.logger.Info("Updated project with id ", project.ID)
	return model.ToDomain(), nil
}

func (r *gormProjectRepository) DeleteByID(ctx context.Context, projectID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", projectID).Delete(&models.ProjectModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return projects.ErrNotFound
		}

		if err := tx.Where("project_id = ?", projectID).
			Delete(&models.ProjectTechnologyModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete project technologies: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted project with id ", projectID)
	return nil
}

// ReplaceTechnologies swaps the full technology set of a project inside a
// single transaction so a crash cannot leave the project half-updated.
func (r *gormProjectRepository) ReplaceTechnologies(ctx context.Context, projectID int64, names []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).
			Delete(&models.ProjectTechnologyModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete existing technologies: %w", err)
		}

		if len(names) == 0 {
			return nil
		}

		rows := make([]models.ProjectTechnologyModel, len(names))
		for i, name := range names {
			rows[i] = models.ProjectTechnologyModel{ProjectID: projectID, Name: name}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert technologies: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Replaced technologies for project id ", projectID)
	return nil
}

func (r *gormProjectRepository) ListTechnologies(ctx context.Context, projectID int64) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.ProjectTechnologyModel{}).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch technologies: %w", err)
	}
	return names, nil
}

func (r *gormProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProjectModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}
