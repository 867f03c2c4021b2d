package v1

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Azu-ul/portfolio-back/internal/domain/skills"
)

// Request DTOs carry their own validation so handlers can reject bad
// payloads before touching a service.

// RegisterRequest is the payload for creating an account
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=255"`
	Apellido string `json:"apellido" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validate for validating RegisterRequest struct
func (r *RegisterRequest) Validate() error {
	return validateStruct(r)
}

// LoginRequest is the payload for issuing a token
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validateStruct(r)
}

// ChangePasswordRequest is the payload for a self-service password change
type ChangePasswordRequest struct {
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Validate for validating ChangePasswordRequest struct
func (r *ChangePasswordRequest) Validate() error {
	return validateStruct(r)
}

// ResetPasswordRequest is the payload for an email-keyed password reset
type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Validate for validating ResetPasswordRequest struct
func (r *ResetPasswordRequest) Validate() error {
	return validateStruct(r)
}

// ProjectRequest is the payload for creating or updating a project
type ProjectRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required,min=1"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// Validate for validating ProjectRequest struct
func (r *ProjectRequest) Validate() error {
	return validateStruct(r)
}

// TechnologiesRequest is the payload for a replace-all technology update
type TechnologiesRequest struct {
	Technologies []string `json:"technologies"`
}

// SkillRequest is the payload for creating or updating a skill
type SkillRequest struct {
	Type           string `json:"type"`
	ParentCategory string `json:"parent_category"`
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Level          int    `json:"level" validate:"min=0,max=100"`
	Description    string `json:"description"`
}

// Validate for validating SkillRequest struct
func (r *SkillRequest) Validate() error {
	return validateStruct(r)
}

// HeaderRequest is the payload for updating the header section
type HeaderRequest struct {
	MainTitle   string `json:"main_title"`
	Subtitle    string `json:"subtitle"`
	CtaText     string `json:"cta_text"`
	LinkedinURL string `json:"linkedin_url"`
	WebsiteURL  string `json:"website_url"`
}

// AboutRequest is the payload for updating the about section
type AboutRequest struct {
	Title      string `json:"title"`
	Paragraph1 string `json:"paragraph_1"`
	Paragraph2 string `json:"paragraph_2"`
}

// ContactRequest is the payload for updating the contact section
type ContactRequest struct {
	Title    string `json:"title"`
	Email    string `json:"email"`
	Website  string `json:"website"`
	Location string `json:"location"`
	Linkedin string `json:"linkedin"`
}

// FooterRequest is the payload for updating the footer section
type FooterRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	LocationText  string `json:"location_text"`
	SpecialtyText string `json:"specialty_text"`
}

// ErrorResponse is the uniform error payload. Details carries the raw
// error text in development mode only.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// InfoResponse is a confirmation payload
type InfoResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the payload of a successful login
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Rol     string `json:"rol"`
}

// UserResponse is the profile payload of the authenticated user
type UserResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
}

// ExistsResponse is the payload of the email existence probe
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// SoftSkillsResponse wraps the soft skill rows under a fixed title
type SoftSkillsResponse struct {
	Title      string              `json:"title"`
	SoftSkills []*skills.SoftSkill `json:"softSkills"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// DBTestResponse is the database diagnostics payload
type DBTestResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ProjectsTestResponse is the projects table diagnostics payload
type ProjectsTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
