package models

import (
	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
)

// SkillModel is the GORM database model for skills
type SkillModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Type           string `gorm:"type:varchar(100)"`
	ParentCategory string `gorm:"type:varchar(100);index"`
	Name           string `gorm:"type:varchar(255);not null"`
	Level          int    `gorm:"type:integer"`
	Description    string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (SkillModel) TableName() string {
	return "skills"
}

// ToDomain converts GORM model to domain entity
func (m *SkillModel) ToDomain() *skills.Skill {
	return &skills.Skill{
		ID:             m.ID,
		Type:           m.Type,
		ParentCategory: m.ParentCategory,
		Name:           m.Name,
		Level:          m.Level,
		Description:    m.Description,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SkillModel) FromDomain(s *skills.Skill) {
	m.ID = s.ID
	m.Type = s.Type
	m.ParentCategory = s.ParentCategory
	m.Name = s.Name
	m.Level = s.Level
	m.Description = s.Description
}

// SoftSkillModel is the GORM database model for the read-only soft skills
type SoftSkillModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (SoftSkillModel) TableName() string {
	return "soft_skills"
}

// ToDomain converts GORM model to domain entity
func (m *SoftSkillModel) ToDomain() *skills.SoftSkill {
	return &skills.SoftSkill{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}
