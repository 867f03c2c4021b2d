package models

import (
	"github.com/Azu-ul/portfolio-back/internal/domain/users"
)

// UserModel is the GORM database model for users (infrastructure concern)
type UserModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Nombre   string `gorm:"type:varchar(100);not null"`
	Apellido string `gorm:"type:varchar(100);not null"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255);not null"`
	RolID    int64  `gorm:"not null;index"`
	// Rol is resolved via join when loading a user; never written back.
	Rol string `gorm:"->;-:migration"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "usuarios"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:       m.ID,
		Nombre:   m.Nombre,
		Apellido: m.Apellido,
		Email:    m.Email,
		Password: m.Password,
		RolID:    m.RolID,
		Rol:      m.Rol,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Nombre = u.Nombre
	m.Apellido = u.Apellido
	m.Email = u.Email
	m.Password = u.Password
	m.RolID = u.RolID
	m.Rol = u.Rol
}

// RoleModel is the GORM database model for the fixed role lookup set
type RoleModel struct {
	ID     int64  `gorm:"primaryKey"`
	Nombre string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

// TableName specifies the table name for GORM
func (RoleModel) TableName() string {
	return "roles"
}
