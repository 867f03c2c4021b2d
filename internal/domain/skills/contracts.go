package skills

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested skill does not exist.
var ErrNotFound = errors.New("skill no encontrada")

// SoftSkillsTitle heads the soft-skills payload.
const SoftSkillsTitle = "Habilidades Adicionales"

// Service defines the skill operations exposed over HTTP.
type Service interface {
	// List retrieves all skills grouped by parent category, then by
	// descending level.
	List(ctx context.Context) ([]*Skill, error)

	// Create validates and inserts a skill, returning it with the
	// generated id.
	Create(ctx context.Context, skill *Skill) (*Skill, error)

	// UpdateByID applies a full-field replace keyed by id and returns the
	// updated row, or ErrNotFound when no row matched.
	UpdateByID(ctx context.Context, skill *Skill) (*Skill, error)

	// DeleteByID removes the skill, or ErrNotFound when no row matched.
	DeleteByID(ctx context.Context, skillID int64) error

	// ListSoft retrieves all soft skills in insertion order.
	ListSoft(ctx context.Context) ([]*SoftSkill, error)
}

// Repository defines the persistence operations for skills.
type Repository interface {
	List(ctx context.Context) ([]*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	UpdateByID(ctx context.Context, skill *Skill) (*Skill, error)
	DeleteByID(ctx context.Context, skillID int64) error
	ListSoft(ctx context.Context) ([]*SoftSkill, error)
}
