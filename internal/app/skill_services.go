package app

import (
	"context"

	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
	"github.com/Azu-ul/portfolio-back/internal/pkg/logger"
)

// skillService implements the skills.Service interface
type skillService struct {
	skillRepo skills.Repository
	logger    logger.Logger
}

// NewSkillService creates a new skillService instance
func NewSkillService(skillRepo skills.Repository, logger logger.Logger) (skills.Service, error) {
	return &skillService{
		skillRepo: skillRepo,
		logger:    logger,
	}, nil
}

func (s *skillService) List(ctx context.Context) ([]*skills.Skill, error) {
	return s.skillRepo.List(ctx)
}

func (s *skillService) Create(ctx context.Context, skill *skills.Skill) (*skills.Skill, error) {
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) UpdateByID(ctx context.Context, skill *skills.Skill) (*skills.Skill, error) {
	return s.skillRepo.UpdateByID(ctx, skill)
}

func (s *skillService) DeleteByID(ctx context.Context, skillID int64) error {
	return s.skillRepo.DeleteByID(ctx, skillID)
}

func (s *skillService) ListSoft(ctx context.Context) ([]*skills.SoftSkill, error) {
	return s.skillRepo.ListSoft(ctx)
}
