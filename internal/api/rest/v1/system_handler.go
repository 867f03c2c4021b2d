package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Azu-ul/portfolio-back/internal/domain/projects"
)

// SystemHandler defines the interface for liveness and diagnostics routes
type SystemHandler interface {
	Health(ctx *gin.Context)
	TestDB(ctx *gin.Context)
	TestProjects(ctx *gin.Context)
}

// systemHandler struct holds the database handle and repositories the
// diagnostics probe against
type systemHandler struct {
	db          *gorm.DB
	projectRepo projects.Repository
	devMode     bool
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *gorm.DB, projectRepo projects.Repository, devMode bool) SystemHandler {
	return &systemHandler{
		db:          db,
		projectRepo: projectRepo,
		devMode:     devMode,
	}
}

// Health reports process liveness
func (handler *systemHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "Portfolio API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// TestDB verifies database connectivity and returns the database clock.
// Drivers disagree on the Go type of CURRENT_TIMESTAMP, so the value is
// scanned untyped and normalized afterwards.
func (handler *systemHandler) TestDB(ctx *gin.Context) {
	var raw interface{}
	err := handler.db.WithContext(ctx).Raw("SELECT CURRENT_TIMESTAMP").Row().Scan(&raw)
	if err != nil {
		response := ErrorResponse{Error: "Database connection failed"}
		if handler.devMode {
			response.Details = err.Error()
		}
		ctx.JSON(http.StatusInternalServerError, response)
		return
	}

	var timestamp string
	switch v := raw.(type) {
	case time.Time:
		timestamp = v.UTC().Format(time.RFC3339)
	case []byte:
		timestamp = string(v)
	case string:
		timestamp = v
	default:
		timestamp = fmt.Sprint(v)
	}

	ctx.JSON(http.StatusOK, DBTestResponse{
		Success:   true,
		Message:   "Database connected successfully",
		Timestamp: timestamp,
	})
}

// TestProjects verifies the projects table is reachable and returns its size
func (handler *systemHandler) TestProjects(ctx *gin.Context) {
	count, err := handler.projectRepo.Count(ctx)
	if err != nil {
		response := ErrorResponse{Error: "Projects table access failed"}
		if handler.devMode {
			response.Details = err.Error()
		}
		ctx.JSON(http.StatusInternalServerError, response)
		return
	}

	ctx.JSON(http.StatusOK, ProjectsTestResponse{
		Success: true,
		Message: "Projects table accessible",
		Count:   count,
	})
}
