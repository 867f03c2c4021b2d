//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/Azu-ul/portfolio-back/internal/domain/content"
	"github.com/Azu-ul/portfolio-back/internal/domain/projects"
	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
	"github.com/Azu-ul/portfolio-back/internal/domain/users"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/identity"
	"github.com/Azu-ul/portfolio-back/internal/infrastructure/persistence"
	pkgTesting "github.com/Azu-ul/portfolio-back/internal/pkg/testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Test constants for token issuance
const (
	TestJWTSecret = "integration-test-signing-key"
	TestTokenTTL  = time.Hour
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService    users.AuthService
	ProjectService projects.Service
	SkillService   skills.Service
	ContentService content.Service

	TokenService users.TokenService
	DBContext    *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := pkgTesting.SetupTestLogger(t)

	dbContext := persistence.SetupTestDB(t, dbType)

	hasher := identity.NewPasswordHasher(bcrypt.MinCost)
	tokenService := identity.NewTokenService(TestJWTSecret, TestTokenTTL)

	authService, err := NewAuthService(dbContext.UserRepo, hasher, tokenService, logger)
	require.NoError(t, err, "Failed to create auth service")

	projectService, err := NewProjectService(dbContext.ProjectRepo, logger)
	require.NoError(t, err, "Failed to create project service")

	skillService, err := NewSkillService(dbContext.SkillRepo, logger)
	require.NoError(t, err, "Failed to create skill service")

	contentService, err := NewContentService(dbContext.ContentRepo, logger)
	require.NoError(t, err, "Failed to create content service")

	return &TestServices{
		AuthService:    authService,
		ProjectService: projectService,
		SkillService:   skillService,
		ContentService: contentService,
		TokenService:   tokenService,
		DBContext:      dbContext,
	}
}
