package projects

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultCategory is assigned when a project is created without one.
const DefaultCategory = "general"

// Project entity
type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// Validate for validating Project struct
func (p *Project) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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

// Technology is a single technology entry attached to a project.
type Technology struct {
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
}
