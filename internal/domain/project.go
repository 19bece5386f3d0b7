package domain

import (
	"strings"
	"time"
)

type Project struct {
	ID          uint
	UserID      uint
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("Project name cannot be empty")
	}

	if len(name) > 255 {
		return NewValidationError("Project name cannot exceed 255 characters")
	}

	return nil
}
