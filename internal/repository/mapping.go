package repository

import (
	"encoding/json"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/models"
)

// Record-to-entity mapping lives here so nothing above the repository layer
// ever sees a GORM struct.

func userToDomain(record models.User) domain.User {
	return domain.User{
		ID:        record.ID,
		Email:     record.Email,
		Name:      record.Name,
		Role:      record.Role,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func projectToDomain(record models.Project) domain.Project {
	return domain.Project{
		ID:          record.ID,
		UserID:      record.UserID,
		Name:        record.Name,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func projectsToDomain(records []models.Project) []domain.Project {
	projects := make([]domain.Project, 0, len(records))

	for _, record := range records {
		projects = append(projects, projectToDomain(record))
	}

	return projects
}

func taskToDomain(record models.Task) domain.Task {
	return domain.Task{
		ID:          record.ID,
		UserID:      record.UserID,
		ProjectID:   record.ProjectID,
		Title:       record.Title,
		Description: record.Description,
		Status:      domain.TaskStatus(record.Status),
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func tasksToDomain(records []models.Task) []domain.Task {
	tasks := make([]domain.Task, 0, len(records))

	for _, record := range records {
		tasks = append(tasks, taskToDomain(record))
	}

	return tasks
}

func notificationToDomain(record models.Notification) domain.Notification {
	return domain.Notification{
		ID:        record.ID,
		UserID:    record.UserID,
		Type:      domain.NotificationType(record.Type),
		Title:     record.Title,
		Message:   record.Message,
		Read:      record.Read,
		Metadata:  json.RawMessage(record.Metadata),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func notificationsToDomain(records []models.Notification) []domain.Notification {
	notifications := make([]domain.Notification, 0, len(records))

	for _, record := range records {
		notifications = append(notifications, notificationToDomain(record))
	}

	return notifications
}
