//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
)

func TestSkillHandler_List_Success(t *testing.T) {
	mockSkillService := new(MockSkillService)
	mockSkillService.On("List", mock.Anything).Return([]*skills.Skill{
		{ID: 1, Type: "technical", ParentCategory: "backend", Name: "Go", Level: 80},
	}, nil)

	handler := NewSkillHandler(mockSkillService, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/content/skills", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Go")
	mockSkillService.AssertExpectations(t)
}

func TestSkillHandler_Create_Success(t *testing.T) {
	mockSkillService := new(MockSkillService)
	mockSkillService.On("Create", mock.Anything, mock.Anything).Return(&skills.Skill{
		ID: 1, Type: "technical", ParentCategory: "backend", Name: "Go", Level: 80,
	}, nil)

	handler := NewSkillHandler(mockSkillService, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("POST", "/api/admin/skills", bytes.NewBufferString(`{"type":"technical","parent_category":"backend","name":"Go","level":80}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSkillService.AssertExpectations(t)
}

func TestSkillHandler_Create_LevelOutOfRange_Error(t *testing.T) {
	mockSkillService := new(MockSkillService)
	handler := NewSkillHandler(mockSkillService, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("POST", "/api/admin/skills", bytes.NewBufferString(`{"name":"Go","level":150}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSkillService.AssertNotCalled(t, "Create")
}

func TestSkillHandler_UpdateByID_NotFound(t *testing.T) {
	mockSkillService := new(MockSkillService)
	mockSkillService.On("UpdateByID", mock.Anything, mock.Anything).Return(nil, skills.ErrNotFound)

	handler := NewSkillHandler(mockSkillService, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("PUT", "/api/admin/skills/99", bytes.NewBufferString(`{"name":"Go","level":50}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "99"}}

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Skill no encontrada")
}

func TestSkillHandler_DeleteByID_Success(t *testing.T) {
	mockSkillService := new(MockSkillService)
	mockSkillService.On("DeleteByID", mock.Anything, int64(3)).Return(nil)

	handler := NewSkillHandler(mockSkillService, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/api/admin/skills/3", nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "3"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Skill eliminada exitosamente")
	mockSkillService.AssertExpectations(t)
}

func TestSkillHandler_ListSoft_WrapsRows(t *testing.T) {
	mockSkillService := new(MockSkillService)
	mockSkillService.On("ListSoft", mock.Anything).Return([]*skills.SoftSkill{
		{ID: 1, Name: "Comunicación", Description: "Con pacientes y colegas"},
	}, nil)

	handler := NewSkillHandler(mockSkillService, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/content/soft-skills", nil)

	handler.ListSoft(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), skills.SoftSkillsTitle)
	assert.Contains(t, w.Body.String(), "softSkills")
	assert.Contains(t, w.Body.String(), "Comunicación")
	mockSkillService.AssertExpectations(t)
}

func TestSkillHandler_ListSoft_Empty_WrapsEmptyArray(t *testing.T) {
	mockSkillService := new(MockSkillService)
	mockSkillService.On("ListSoft", mock.Anything).Return([]*skills.SoftSkill{}, nil)

	handler := NewSkillHandler(mockSkillService, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/content/soft-skills", nil)

	handler.ListSoft(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"softSkills":[]`)
}
