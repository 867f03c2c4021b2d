package models

import (
	"github.com/Azu-ul/portfolio-back/internal/domain/projects"
)

// ProjectModel is the GORM database model for portfolio projects
type ProjectModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	URL         string `gorm:"type:varchar(512);column:url"`
	Image       string `gorm:"type:varchar(512)"`
	Category    string `gorm:"type:varchar(100);default:general"`
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts GORM model to domain entity
func (m *ProjectModel) ToDomain() *projects.Project {
	return &projects.Project{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		Image:       m.Image,
		Category:    m.Category,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProjectModel) FromDomain(p *projects.Project) {
	m.ID = p.ID
	m.Title = p.Title
	m.Description = p.Description
	m.URL = p.URL
	m.Image = p.Image
	m.Category = p.Category
}

// ProjectTechnologyModel is the GORM database model for a project's
// technology entries. Lifecycle is tied to the parent project.
type ProjectTechnologyModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProjectID int64  `gorm:"not null;index"`
	Name      string `gorm:"type:varchar(100);not null"`
}

// TableName specifies the table name for GORM
func (ProjectTechnologyModel) TableName() string {
	return "project_technologies"
}
