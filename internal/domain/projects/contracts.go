package projects

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested project does not exist.
var ErrNotFound = errors.New("proyecto no encontrado")

// Service defines the project operations exposed over HTTP.
type Service interface {
	// List retrieves all projects, newest id first. A missing backing
	// table yields an empty list, not an error.
	List(ctx context.Context) ([]*Project, error)

	// Create validates and inserts a project, returning it with the
	// generated id. Category defaults to DefaultCategory when empty.
	Create(ctx context.Context, project *Project) (*Project, error)

	// UpdateByID applies a full-field replace keyed by id and returns the
	// updated row, or ErrNotFound when no row matched.
	UpdateByID(ctx context.Context, project *Project) (*Project, error)

	// DeleteByID removes the project, or ErrNotFound when no row matched.
	// Its technologies are removed with it.
	DeleteByID(ctx context.Context, projectID int64) error

	// ReplaceTechnologies replaces the full technology set of a project
	// with the trimmed, non-blank entries of names.
	ReplaceTechnologies(ctx context.Context, projectID int64, names []string) error
}

// Repository defines the persistence operations for projects.
type Repository interface {
	List(ctx context.Context) ([]*Project, error)
	Create(ctx context.Context, project *Project) error
	UpdateByID(ctx context.Context, project *Project) (*Project, error)
	DeleteByID(ctx context.Context, projectID int64) error

	// ReplaceTechnologies deletes all technologies of the project and bulk
	// inserts names, atomically.
	ReplaceTechnologies(ctx context.Context, projectID int64, names []string) error

	// ListTechnologies returns the technology names stored for a project.
	ListTechnologies(ctx context.Context, projectID int64) ([]string, error)

	// Count returns the number of stored projects.
	Count(ctx context.Context) (int64, error)
}
