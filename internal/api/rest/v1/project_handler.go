package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Azu-ul/portfolio-back/internal/domain/projects"
)

// ProjectHandler defines the interface for handling project operations
type ProjectHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ReplaceTechnologies(ctx *gin.Context)
}

// projectHandler struct holds the services
type projectHandler struct {
	projectService projects.Service
	devMode        bool
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService projects.Service, devMode bool) ProjectHandler {
	return &projectHandler{
		projectService: projectService,
		devMode:        devMode,
	}
}

func (handler *projectHandler) fail(ctx *gin.Context, status int, message string, err error) {
	response := ErrorResponse{Error: message}
	if handler.devMode && err != nil {
		response.Details = err.Error()
	}
	ctx.JSON(status, response)
}

// List returns all projects, newest first
func (handler *projectHandler) List(ctx *gin.Context) {
	listed, err := handler.projectService.List(ctx)
	if err != nil {
		handler.fail(ctx, http.StatusInternalServerError, "Error al obtener los proyectos", err)
		return
	}

	if listed == nil {
		listed = []*projects.Project{}
	}
	ctx.JSON(http.StatusOK, listed)
}

// Create inserts a new project
func (handler *projectHandler) Create(ctx *gin.Context) {
	var request ProjectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "Title and description are required", err)
		return
	}

	if request.Title == "" || request.Description == "" {
		handler.fail(ctx, http.StatusBadRequest, "Title and description are required", nil)
		return
	}

	if err := request.Validate(); err != nil {
		handler.fail(ctx, http.StatusBadRequest, err.Error(), nil)
		return
	}

	created, err := handler.projectService.Create(ctx, &projects.Project{
		Title:       request.Title,
		Description: request.Description,
		URL:         request.URL,
		Image:       request.Image,
		Category:    request.Category,
	})
	if err != nil {
		handler.fail(ctx, http.StatusInternalServerError, "Error al crear el proyecto", err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateByID replaces all fields of a project
func (handler *projectHandler) UpdateByID(ctx *gin.Context) {
	projectID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid project id", nil)
		return
	}

	var request ProjectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := request.Validate(); err != nil {
		handler.fail(ctx, http.StatusBadRequest, err.Error(), nil)
		return
	}

	updated, err := handler.projectService.UpdateByID(ctx, &projects.Project{
		ID:          projectID,
		Title:       request.Title,
		Description: request.Description,
		URL:         request.URL,
		Image:       request.Image,
		Category:    request.Category,
	})
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "Proyecto no encontrado", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error al actualizar el proyecto", err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteByID removes a project together with its technologies
func (handler *projectHandler) DeleteByID(ctx *gin.Context) {
	projectID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid project id", nil)
		return
	}

	if err := handler.projectService.DeleteByID(ctx, projectID); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "Proyecto no encontrado", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error al eliminar el proyecto", err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "Proyecto eliminado correctamente"})
}

// ReplaceTechnologies swaps the full technology set of a project
func (handler *projectHandler) ReplaceTechnologies(ctx *gin.Context) {
	projectID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid project id", nil)
		return
	}

	var request TechnologiesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := handler.projectService.ReplaceTechnologies(ctx, projectID, request.Technologies); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "Proyecto no encontrado", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error al guardar las tecnologías", err)
		return
	}

	ctx.JSON(http.StatusCreated, InfoResponse{Message: "Tecnologías actualizadas correctamente"})
}
