package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type NotificationType string

const (
	NotificationTaskCreated    NotificationType = "task_created"
	NotificationTaskUpdated    NotificationType = "task_updated"
	NotificationTaskDeleted    NotificationType = "task_deleted"
	NotificationProjectCreated NotificationType = "project_created"
	NotificationProjectUpdated NotificationType = "project_updated"
)

type Notification struct {
	ID        uint
	UserID    uint
	Type      NotificationType
	Title     string
	Message   string
	Read      bool
	Metadata  json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidateNotificationType(notificationType string) error {
	switch NotificationType(notificationType) {
	case NotificationTaskCreated, NotificationTaskUpdated, NotificationTaskDeleted,
		NotificationProjectCreated, NotificationProjectUpdated:
		return nil
	}

	return NewValidationError(fmt.Sprintf("Invalid notification type: %s", notificationType))
}

func ValidateNotificationTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("Notification title cannot be empty")
	}

	return nil
}

func ValidateNotificationMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return NewValidationError("Notification message cannot be empty")
	}

	return nil
}
