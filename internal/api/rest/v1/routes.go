package v1

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Azu-ul/portfolio-back/internal/domain/content"
	"github.com/Azu-ul/portfolio-back/internal/domain/projects"
	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
	"github.com/Azu-ul/portfolio-back/internal/domain/users"
)

// BasePath is the common prefix of all routes.
const BasePath = "/api"

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	authService users.AuthService,
	tokenService users.TokenService,
	projectService projects.Service,
	skillService skills.Service,
	contentService content.Service,
	projectRepo projects.Repository,
	db *gorm.DB,
	devMode bool) {

	api := r.Group(BasePath)

	authRequired := AuthRequired(tokenService)
	adminRequired := AdminRequired()

	// System routes
	systemHandler := NewSystemHandler(db, projectRepo, devMode)
	api.GET("/health", systemHandler.Health)
	api.GET("/test-db", systemHandler.TestDB)
	api.GET("/test-projects", systemHandler.TestProjects)

	// Auth routes
	authHandler := NewAuthHandler(authService, devMode)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.PUT("/change-password", authRequired, authHandler.ChangePassword)
	auth.PUT("/reset-password", authHandler.ResetPassword)
	auth.GET("/me", authRequired, authHandler.Me)
	auth.GET("/check-email-exists", authHandler.CheckEmailExists)

	// Public portfolio routes
	projectHandler := NewProjectHandler(projectService, devMode)
	api.GET("/portfolio", projectHandler.List)

	// Public content routes
	contentHandler := NewContentHandler(contentService, devMode)
	skillHandler := NewSkillHandler(skillService, devMode)
	publicContent := api.Group("/content")
	publicContent.GET("/header", contentHandler.GetHeader)
	publicContent.GET("/about", contentHandler.GetAbout)
	publicContent.GET("/contact", contentHandler.GetContact)
	publicContent.GET("/footer", contentHandler.GetFooter)
	publicContent.GET("/skills", skillHandler.List)
	publicContent.GET("/soft-skills", skillHandler.ListSoft)

	// Content updates require an admin token
	protectedContent := api.Group("/content", authRequired, adminRequired)
	protectedContent.PUT("/header", contentHandler.UpdateHeader)
	protectedContent.PUT("/about", contentHandler.UpdateAbout)
	protectedContent.PUT("/contact", contentHandler.UpdateContact)
	protectedContent.PUT("/footer", contentHandler.UpdateFooter)

	// Admin routes
	admin := api.Group("/admin", authRequired, adminRequired)
	admin.GET("/projects", projectHandler.List)
	admin.POST("/projects", projectHandler.Create)
	admin.PUT("/projects/:id", projectHandler.UpdateByID)
	admin.DELETE("/projects/:id", projectHandler.DeleteByID)
	admin.POST("/projects/:id/technologies", projectHandler.ReplaceTechnologies)
	admin.GET("/skills", skillHandler.List)
	admin.POST("/skills", skillHandler.Create)
	admin.PUT("/skills/:id", skillHandler.UpdateByID)
	admin.DELETE("/skills/:id", skillHandler.DeleteByID)
}
