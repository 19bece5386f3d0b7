package repository

import (
	"context"
	"errors"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateNotificationRecord struct {
	UserID   uint
	Type     domain.NotificationType
	Title    string
	Message  string
	Metadata []byte
}

type NotificationRepository interface {
	Create(ctx context.Context, record CreateNotificationRecord) (domain.Notification, error)
	GetByID(ctx context.Context, id uint) (domain.Notification, error)
	GetByUserID(ctx context.Context, userID uint) ([]domain.Notification, error)
	GetUnreadByUserID(ctx context.Context, userID uint) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id uint) (domain.Notification, error)
	MarkAllAsRead(ctx context.Context, userID uint) error
	Delete(ctx context.Context, id uint) error
	BelongsToUser(ctx context.Context, id uint, userID uint) (bool, error)
}

type notificationRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewNotificationRepository(db *gorm.DB, logger *zap.Logger) NotificationRepository {
	return &notificationRepository{db: db, logger: logger}
}

func (r *notificationRepository) Create(ctx context.Context, record CreateNotificationRecord) (domain.Notification, error) {
	notification := models.Notification{
		UserID:   record.UserID,
		Type:     string(record.Type),
		Title:    record.Title,
		Message:  record.Message,
		Read:     false,
		Metadata: datatypes.JSON(record.Metadata),
	}

	if err := r.db.WithContext(ctx).Create(&notification).Error; err != nil {
		r.logger.Error("failed to create notification", zap.Error(err), zap.Uint("user_id", record.UserID))
		return domain.Notification{}, err
	}

	return notificationToDomain(notification), nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id uint) (domain.Notification, error) {
	var notification models.Notification

	if err := r.db.WithContext(ctx).First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Notification{}, domain.NewNotFoundError("Notification", id)
		}

		r.logger.Error("failed to fetch notification", zap.Error(err), zap.Uint("notification_id", id))
		return domain.Notification{}, err
	}

	return notificationToDomain(notification), nil
}

func (r *notificationRepository) GetByUserID(ctx context.Context, userID uint) ([]domain.Notification, error) {
	var notifications []models.Notification

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error

	if err != nil {
		r.logger.Error("failed to list notifications", zap.Error(err), zap.Uint("user_id", userID))
		return nil, err
	}

	return notificationsToDomain(notifications), nil
}

func (r *notificationRepository) GetUnreadByUserID(ctx context.Context, userID uint) ([]domain.Notification, error) {
	var notifications []models.Notification

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND read = ?", userID, false).
		Order("created_at DESC").
		Find(&notifications).Error

	if err != nil {
		r.logger.Error("failed to list unread notifications", zap.Error(err), zap.Uint("user_id", userID))
		return nil, err
	}

	return notificationsToDomain(notifications), nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id uint) (domain.Notification, error) {
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error

	if err != nil {
		r.logger.Error("failed to mark notification as read", zap.Error(err), zap.Uint("notification_id", id))
		return domain.Notification{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error

	if err != nil {
		r.logger.Error("failed to mark all notifications as read", zap.Error(err), zap.Uint("user_id", userID))
		return err
	}

	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Notification{}, id).Error; err != nil {
		r.logger.Error("failed to delete notification", zap.Error(err), zap.Uint("notification_id", id))
		return err
	}

	return nil
}

func (r *notificationRepository) BelongsToUser(ctx context.Context, id uint, userID uint) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error

	if err != nil {
		r.logger.Error("failed to check notification ownership", zap.Error(err), zap.Uint("notification_id", id))
		return false, err
	}

	return count > 0, nil
}
