package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Azu-ul/portfolio-back/internal/domain/content"
)

// ContentHandler defines the interface for reading and updating the site
// content singletons
type ContentHandler interface {
	GetHeader(ctx *gin.Context)
	GetAbout(ctx *gin.Context)
	GetContact(ctx *gin.Context)
	GetFooter(ctx *gin.Context)
	UpdateHeader(ctx *gin.Context)
	UpdateAbout(ctx *gin.Context)
	UpdateContact(ctx *gin.Context)
	UpdateFooter(ctx *gin.Context)
}

// contentHandler struct holds the services
type contentHandler struct {
	contentService content.Service
	devMode        bool
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService content.Service, devMode bool) ContentHandler {
	return &contentHandler{
		contentService: contentService,
		devMode:        devMode,
	}
}

func (handler *contentHandler) fail(ctx *gin.Context, status int, message string, err error) {
	response := ErrorResponse{Error: message}
	if handler.devMode && err != nil {
		response.Details = err.Error()
	}
	ctx.JSON(status, response)
}

// GetHeader returns the header copy, seeded or default
func (handler *contentHandler) GetHeader(ctx *gin.Context) {
	header, err := handler.contentService.GetHeader(ctx)
	if err != nil {
		handler.fail(ctx, http.StatusInternalServerError, "Error al obtener header", err)
		return
	}
	ctx.JSON(http.StatusOK, header)
}

// GetAbout returns the about copy, seeded or default
func (handler *contentHandler) GetAbout(ctx *gin.Context) {
	about, err := handler.contentService.GetAbout(ctx)
	if err != nil {
		handler.fail(ctx, http.StatusInternalServerError, "Error al obtener about", err)
		return
	}
	ctx.JSON(http.StatusOK, about)
}

// GetContact returns the contact copy, seeded or default
func (handler *contentHandler) GetContact(ctx *gin.Context) {
	contact, err := handler.contentService.GetContact(ctx)
	if err != nil {
		handler.fail(ctx, http.StatusInternalServerError, "Error al obtener contact", err)
		return
	}
	ctx.JSON(http.StatusOK, contact)
}

// GetFooter returns the footer copy, seeded or default
func (handler *contentHandler) GetFooter(ctx *gin.Context) {
	footer, err := handler.contentService.GetFooter(ctx)
	if err != nil {
		handler.fail(ctx, http.StatusInternalServerError, "Error al obtener footer", err)
		return
	}
	ctx.JSON(http.StatusOK, footer)
}

// UpdateHeader replaces the header copy
func (handler *contentHandler) UpdateHeader(ctx *gin.Context) {
	var request HeaderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := handler.contentService.UpdateHeader(ctx, &content.Header{
		MainTitle:   request.MainTitle,
		Subtitle:    request.Subtitle,
		CtaText:     request.CtaText,
		LinkedinURL: request.LinkedinURL,
		WebsiteURL:  request.WebsiteURL,
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "Header no encontrado", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error al actualizar header", err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// UpdateAbout replaces the about copy
func (handler *contentHandler) UpdateAbout(ctx *gin.Context) {
	var request AboutRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := handler.contentService.UpdateAbout(ctx, &content.About{
		Title:      request.Title,
		Paragraph1: request.Paragraph1,
		Paragraph2: request.Paragraph2,
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "About no encontrado", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error al actualizar about", err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// UpdateContact replaces the contact copy
func (handler *contentHandler) UpdateContact(ctx *gin.Context) {
	var request ContactRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := handler.contentService.UpdateContact(ctx, &content.Contact{
		Title:    request.Title,
		Email:    request.Email,
		Website:  request.Website,
		Location: request.Location,
		Linkedin: request.Linkedin,
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "Contact no encontrado", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error al actualizar contact", err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// UpdateFooter replaces the footer copy
func (handler *contentHandler) UpdateFooter(ctx *gin.Context) {
	var request FooterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		handler.fail(ctx, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := handler.contentService.UpdateFooter(ctx, &content.Footer{
		Name:          request.Name,
		Description:   request.Description,
		LocationText:  request.LocationText,
		SpecialtyText: request.SpecialtyText,
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			handler.fail(ctx, http.StatusNotFound, "Footer no encontrado", nil)
			return
		}
		handler.fail(ctx, http.StatusInternalServerError, "Error al actualizar footer", err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
