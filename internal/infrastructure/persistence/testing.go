//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"github.com/Azu-ul/portfolio-back/internal/domain/content"
	"github.com/Azu-ul/portfolio-back/internal/domain/projects"
	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
	"github.com/Azu-ul/portfolio-back/internal/domain/users"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/persistence/models"
	"github.com/Azu-ul/portfolio-back/internal/pkg/config"
	pkgTesting "github.com/Azu-ul/portfolio-back/internal/pkg/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	UserRepo    users.Repository
	ProjectRepo projects.Repository
	SkillRepo   skills.Repository
	ContentRepo content.Repository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.RoleModel{},
		&models.ProjectModel{},
		&models.ProjectTechnologyModel{},
		&models.SkillModel{},
		&models.SoftSkillModel{},
		&models.SiteHeaderModel{},
		&models.SiteAboutModel{},
		&models.SiteContactModel{},
		&models.SiteFooterModel{},
	)
	require.NoError(t, err, "Failed to migrate schema")

	SeedRoles(t, db)

	log := pkgTesting.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, log)
	require.NoError(t, err)
	projectRepo, err := NewGormProjectRepository(db, log)
	require.NoError(t, err)
	skillRepo, err := NewGormSkillRepository(db, log)
	require.NoError(t, err)
	contentRepo, err := NewGormContentRepository(db, log)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	return &TestContext{
		DB:          db,
		UserRepo:    userRepo,
		ProjectRepo: projectRepo,
		SkillRepo:   skillRepo,
		ContentRepo: contentRepo,
	}
}

// SeedRoles inserts the fixed role lookup set.
func SeedRoles(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, EnsureRoles(db))
}

// CreateTestUser builds a valid user with a unique email.
func CreateTestUser(t *testing.T) *users.User {
	t.Helper()

	return &users.User{
		Nombre:   "Clara",
		Apellido: "Keller",
		Email:    uuid.NewString() + "@example.com",
		Password: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		RolID:    users.DefaultRoleID,
	}
}

// CreateTestProject builds a valid project.
func CreateTestProject(t *testing.T) *projects.Project {
	t.Helper()

	return &projects.Project{
		Title:       "Parkinson Research Portal",
		Description: "Patient-facing research summaries",
		URL:         "https://example.com/portal",
		Image:       "portal.png",
		Category:    projects.DefaultCategory,
	}
}
