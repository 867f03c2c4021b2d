//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Azu-ul/portfolio-back/internal/domain/content"
	"github.com/Azu-ul/portfolio-back/internal/domain/projects"
	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
	"github.com/Azu-ul/portfolio-back/internal/domain/users"
)

// MockAuthService is a mock implementation of users.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, nombre, apellido, email, password string) error {
	args := m.Called(ctx, nombre, apellido, email, password)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID int64, newPassword string) error {
	args := m.Called(ctx, userID, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	args := m.Called(ctx, email, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockTokenService is a mock implementation of users.TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(claims users.Claims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (*users.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Claims), args.Error(1)
}

// MockProjectService is a mock implementation of projects.Service
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context) ([]*projects.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*projects.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, project *projects.Project) (*projects.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) UpdateByID(ctx context.Context, project *projects.Project) (*projects.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) DeleteByID(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectService) ReplaceTechnologies(ctx context.Context, projectID int64, names []string) error {
	args := m.Called(ctx, projectID, names)
	return args.Error(0)
}

// MockProjectRepository is a mock implementation of projects.Repository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*projects.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*projects.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *projects.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateByID(ctx context.Context, project *projects.Project) (*projects.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectRepository) DeleteByID(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) ReplaceTechnologies(ctx context.Context, projectID int64, names []string) error {
	args := m.Called(ctx, projectID, names)
	return args.Error(0)
}

func (m *MockProjectRepository) ListTechnologies(ctx context.Context, projectID int64) ([]string, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSkillService is a mock implementation of skills.Service
type MockSkillService struct {
	mock.Mock
}

func (m *MockSkillService) List(ctx context.Context) ([]*skills.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*skills.Skill), args.Error(1)
}

func (m *MockSkillService) Create(ctx context.Context, skill *skills.Skill) (*skills.Skill, error) {
	args := m.Called(ctx, skill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skills.Skill), args.Error(1)
}

func (m *MockSkillService) UpdateByID(ctx context.Context, skill *skills.Skill) (*skills.Skill, error) {
	args := m.Called(ctx, skill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skills.Skill), args.Error(1)
}

func (m *MockSkillService) DeleteByID(ctx context.Context, skillID int64) error {
	args := m.Called(ctx, skillID)
	return args.Error(0)
}

func (m *MockSkillService) ListSoft(ctx context.Context) ([]*skills.SoftSkill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*skills.SoftSkill), args.Error(1)
}

// MockContentService is a mock implementation of content.Service
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) GetHeader(ctx context.Context) (*content.Header, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Header), args.Error(1)
}

func (m *MockContentService) GetAbout(ctx context.Context) (*content.About, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.About), args.Error(1)
}

func (m *MockContentService) GetContact(ctx context.Context) (*content.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Contact), args.Error(1)
}

func (m *MockContentService) GetFooter(ctx context.Context) (*content.Footer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Footer), args.Error(1)
}

func (m *MockContentService) UpdateHeader(ctx context.Context, header *content.Header) (*content.Header, error) {
	args := m.Called(ctx, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Header), args.Error(1)
}

func (m *MockContentService) UpdateAbout(ctx context.Context, about *content.About) (*content.About, error) {
	args := m.Called(ctx, about)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.About), args.Error(1)
}

func (m *MockContentService) UpdateContact(ctx context.Context, contact *content.Contact) (*content.Contact, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Contact), args.Error(1)
}

func (m *MockContentService) UpdateFooter(ctx context.Context, footer *content.Footer) (*content.Footer, error) {
	args := m.Called(ctx, footer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Footer), args.Error(1)
}
