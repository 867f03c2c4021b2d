package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Azu-ul/portfolio-back/internal/domain/users"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/persistence/models"
)

// EnsureRoles inserts the fixed role lookup rows if they are missing.
// Role ids are stable: admin = 1, usuario = 2.
func EnsureRoles(db *gorm.DB) error {
	roles := []models.RoleModel{
		{ID: 1, Nombre: users.RoleAdmin},
		{ID: 2, Nombre: users.RoleUser},
	}

	for _, role := range roles {
		if err := db.FirstOrCreate(&models.RoleModel{}, role).Error; err != nil {
			return fmt.Errorf("failed to seed role %q: %w", role.Nombre, err)
		}
	}
	return nil
}
