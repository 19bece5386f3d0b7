package usecase

import (
	"context"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/repository"
)

type CreateNotificationInput struct {
	UserID   uint
	Type     string
	Title    string
	Message  string
	Metadata []byte
}

type CreateNotificationUseCase struct {
	notifications repository.NotificationRepository
}

func NewCreateNotificationUseCase(notifications repository.NotificationRepository) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{notifications: notifications}
}

func (uc *CreateNotificationUseCase) Execute(ctx context.Context, input CreateNotificationInput) (domain.Notification, error) {
	if err := domain.ValidateNotificationType(input.Type); err != nil {
		return domain.Notification{}, err
	}

	if err := domain.ValidateNotificationTitle(input.Title); err != nil {
		return domain.Notification{}, err
	}

	if err := domain.ValidateNotificationMessage(input.Message); err != nil {
		return domain.Notification{}, err
	}

	return uc.notifications.Create(ctx, repository.CreateNotificationRecord{
		UserID:   input.UserID,
		Type:     domain.NotificationType(input.Type),
		Title:    input.Title,
		Message:  input.Message,
		Metadata: input.Metadata,
	})
}

type ListNotificationsUseCase struct {
	notifications repository.NotificationRepository
}

func NewListNotificationsUseCase(notifications repository.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notifications: notifications}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, userID uint, unreadOnly bool) ([]domain.Notification, error) {
	if unreadOnly {
		return uc.notifications.GetUnreadByUserID(ctx, userID)
	}

	return uc.notifications.GetByUserID(ctx, userID)
}

type MarkNotificationAsReadUseCase struct {
	notifications repository.NotificationRepository
}

func NewMarkNotificationAsReadUseCase(notifications repository.NotificationRepository) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{notifications: notifications}
}

func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, notificationID uint, userID uint) (domain.Notification, error) {
	notification, err := uc.notifications.GetByID(ctx, notificationID)

	if err != nil {
		return domain.Notification{}, err
	}

	if notification.UserID != userID {
		return domain.Notification{}, domain.NewForbiddenError("You do not have permission to update this notification")
	}

	return uc.notifications.MarkAsRead(ctx, notificationID)
}

type DeleteNotificationUseCase struct {
	notifications repository.NotificationRepository
}

func NewDeleteNotificationUseCase(notifications repository.NotificationRepository) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{notifications: notifications}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, notificationID uint, userID uint) error {
	notification, err := uc.notifications.GetByID(ctx, notificationID)

	if err != nil {
		return err
	}

	if notification.UserID != userID {
		return domain.NewForbiddenError("You do not have permission to delete this notification")
	}

	return uc.notifications.Delete(ctx, notificationID)
}

type MarkAllNotificationsAsReadUseCase struct {
	notifications repository.NotificationRepository
}

func NewMarkAllNotificationsAsReadUseCase(notifications repository.NotificationRepository) *MarkAllNotificationsAsReadUseCase {
	return &MarkAllNotificationsAsReadUseCase{notifications: notifications}
}

func (uc *MarkAllNotificationsAsReadUseCase) Execute(ctx context.Context, userID uint) error {
	return uc.notifications.MarkAllAsRead(ctx, userID)
}
