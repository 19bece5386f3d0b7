package types

import (
	"encoding/json"
	"time"

	"github.com/taskboard-dev/taskboard/internal/domain"
)

// Response DTOs: the wire shapes are distinct from the domain entities, and
// timestamps always cross the boundary as ISO-8601 strings.

type UserResponse struct {
	ID    uint    `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Role  string  `json:"role"`
}

type TaskResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	ProjectID   *uint   `json:"projectId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type ProjectResponse struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"userId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type NotificationResponse struct {
	ID        uint            `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Read      bool            `json:"read"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

func NewTaskResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		ProjectID:   task.ProjectID,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

func NewTaskResponseList(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		responses = append(responses, NewTaskResponse(task))
	}

	return responses
}

func NewProjectResponse(project domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		UserID:      project.UserID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   project.UpdatedAt.Format(time.RFC3339),
	}
}

func NewProjectResponseList(projects []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		responses = append(responses, NewProjectResponse(project))
	}

	return responses
}

func NewNotificationResponse(notification domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		Type:      string(notification.Type),
		Title:     notification.Title,
		Message:   notification.Message,
		Read:      notification.Read,
		Metadata:  notification.Metadata,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		UpdatedAt: notification.UpdatedAt.Format(time.RFC3339),
	}
}

func NewNotificationResponseList(notifications []domain.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(notifications))

	for _, notification := range notifications {
		responses = append(responses, NewNotificationResponse(notification))
	}

	return responses
}
