package domain

import (
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task is an immutable snapshot of a persisted task. Mutation goes through
// the repository's partial update, never through field assignment.
type Task struct {
	ID          uint
	UserID      uint
	ProjectID   *uint
	Title       string
	Description *string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Task) IsTodo() bool {
	return t.Status == TaskStatusTodo
}

func (t Task) IsInProgress() bool {
	return t.Status == TaskStatusInProgress
}

func (t Task) IsDone() bool {
	return t.Status == TaskStatusDone
}

func ValidateTaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("Task title cannot be empty")
	}

	if len(title) > 255 {
		return NewValidationError("Task title cannot exceed 255 characters")
	}

	return nil
}

func ValidateTaskStatus(status string) error {
	switch TaskStatus(status) {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return nil
	}

	return NewValidationError(fmt.Sprintf("Invalid task status: %s", status))
}
