package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
)

// SkillHandler defines the interface for handling skill operations
type SkillHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ListSoft(ctx *gin.Context)
}

// skillHandler struct holds the services
type skillHandler struct {
	skillService skills.Service
	devMode      bool
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(skillService skills.Service, devMode bool) SkillHandler {
	return &skillHandler{
		skillService: skillService,
		devMode:      devMode,
	}
}

func (handler *skillHandler) fail(ctx *gin.Context, status int, message string, err error) {
	response := ErrorResponse{Error: message}
	if handler.devMode && err != nil {
		response.Details = err.Error()
	}
	ctx.JSON(status, response)
}

// List returns all skills grouped by parent category
func (handler *skillHandler) List(ctx *gin.Context) {
	listed, err := handler.skillService.List(ctx)
	if err != nil {
		handler.fail(ctx, http.StatusInternalServerError, "Error al obtener las skills", err)
		return
	}

	if listed == nil {
		listed = []*skills.Skill{}
	}
	ctx.JSON(http.StatusOK, listed)
}

// Create inserts a new skill
func (handler *skillHandler) Create(ctx *gin.Context) {
	var request SkillRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := request.Validate(); err != nil {
		handler.fail(ctx, http.StatusBadRequest, err.Error(), nil)
		return
	}

	created, err := handler.skillService.Create(ctx, &skills.Skill{
		Type:           request.Type,
		ParentCategory: request.ParentCategory,
		Name:           request.Name,
		Level:          request.Level,
		Description:    request.Description,
	})
	if err != nil {
		handler.fail(ctx, http.StatusInternalServerError, "Error al crear la skill", err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateByID replaces all fields of a skill
func (handler *skillHandler) UpdateByID(ctx *gin.Context) {
	skillID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid skill id", nil)
		return
	}

	var request SkillRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := request.Validate(); err != nil {
		handler.fail(ctx, http.StatusBadRequest, err.Error(), nil)
		return
	}

	updated, err := handler.skillService.UpdateByID(ctx, &skills.Skill{
		ID:             skillID,
		Type:           request.Type,
		ParentCategory: request.ParentCategory,
		Name:           request.Name,
		Level:          request.Level,
		Description:    request.Description,
	})
	if err != nil {
		if errors.Is(err, skills.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "Skill no encontrada", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error al actualizar la skill", err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteByID removes a skill
func (handler *skillHandler) DeleteByID(ctx *gin.Context) {
	skillID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid skill id", nil)
		return
	}

	if err := handler.skillService.DeleteByID(ctx, skillID); err != nil {
		if errors.Is(err, skills.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "Skill no encontrada", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error al eliminar la skill", err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "Skill eliminada exitosamente"})
}

// ListSoft returns the soft skills wrapped under their fixed title
func (handler *skillHandler) ListSoft(ctx *gin.Context) {
	soft, err := handler.skillService.ListSoft(ctx)
	if err != nil {
		handler.fail(ctx, http.StatusInternalServerError, "Error al obtener las habilidades adicionales", err)
		return
	}

	if soft == nil {
		soft = []*skills.SoftSkill{}
	}
	ctx.JSON(http.StatusOK, SoftSkillsResponse{
		Title:      skills.SoftSkillsTitle,
		SoftSkills: soft,
	})
}
