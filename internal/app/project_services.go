package app

import (
	"context"
	"strings"

	"github.com/Azu-ul/portfolio-back/internal/domain/projects"
	"github.com/Azu-ul/portfolio-back/internal/pkg/logger"
)

// projectService implements the projects.Service interface
type projectService struct {
	projectRepo projects.Repository
	logger      logger.Logger
}

// NewProjectService creates a new projectService instance
func NewProjectService(projectRepo projects.Repository, logger logger.Logger) (projects.Service, error) {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}, nil
}

func (s *projectService) List(ctx context.Context) ([]*projects.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *projectService) Create(ctx context.Context, project *projects.Project) (*projects.Project, error) {
	if project.Category == "" {
		project.Category = projects.DefaultCategory
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) UpdateByID(ctx context.Context, project *projects.Project) (*projects.Project, error) {
	return s.projectRepo.UpdateByID(ctx, project)
}

func (s *projectService) DeleteByID(ctx context.Context, projectID int64) error {
	return s.projectRepo.DeleteByID(ctx, projectID)
}

func (s *projectService) ReplaceTechnologies(ctx context.Context, projectID int64, names []string) error {
	// Blank and whitespace-only entries are dropped; survivors are trimmed.
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}

	return s.projectRepo.ReplaceTechnologies(ctx, projectID, cleaned)
}
