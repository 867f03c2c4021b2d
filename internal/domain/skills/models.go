package skills

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Skill entity, grouped by parent category and sorted by descending level.
type Skill struct {
	ID             int64  `json:"id"`
	Type           string `json:"type"`
	ParentCategory string `json:"parent_category"`
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Level          int    `json:"level" validate:"min=0,max=100"`
	Description    string `json:"description"`
}

// Validate for validating Skill struct
func (s *Skill) Validate() error {
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

// SoftSkill is a read-only entity; no create, update or delete is exposed.
type SoftSkill struct {
	ID          int64  `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
