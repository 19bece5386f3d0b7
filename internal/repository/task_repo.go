package repository

import (
	"context"
	"errors"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateTaskRecord struct {
	UserID      uint
	ProjectID   *uint
	Title       string
	Description *string
	Status      domain.TaskStatus
}

// UpdateTaskRecord carries a partial update: nil fields are left untouched.
type UpdateTaskRecord struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

type TaskRepository interface {
	Create(ctx context.Context, record CreateTaskRecord) (domain.Task, error)
	GetByID(ctx context.Context, id uint) (domain.Task, error)
	GetByUserID(ctx context.Context, userID uint) ([]domain.Task, error)
	GetByProjectID(ctx context.Context, projectID uint) ([]domain.Task, error)
	GetByUserIDAndStatus(ctx context.Context, userID uint, status domain.TaskStatus) ([]domain.Task, error)
	Update(ctx context.Context, id uint, record UpdateTaskRecord) (domain.Task, error)
	Delete(ctx context.Context, id uint) error
	BelongsToUser(ctx context.Context, id uint, userID uint) (bool, error)
}

type taskRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewTaskRepository(db *gorm.DB, logger *zap.Logger) TaskRepository {
	return &taskRepository{db: db, logger: logger}
}

func (r *taskRepository) Create(ctx context.Context, record CreateTaskRecord) (domain.Task, error) {
	task := models.Task{
		UserID:      record.UserID,
		ProjectID:   record.ProjectID,
		Title:       record.Title,
		Description: record.Description,
		Status:      string(record.Status),
	}

	if err := r.db.WithContext(ctx).Create(&task).Error; err != nil {
		r.logger.Error("failed to create task", zap.Error(err), zap.Uint("user_id", record.UserID))
		return domain.Task{}, err
	}

	return taskToDomain(task), nil
}

func (r *taskRepository) GetByID(ctx context.Context, id uint) (domain.Task, error) {
	var task models.Task

	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Task{}, domain.NewNotFoundError("Task", id)
		}

		r.logger.Error("failed to fetch task", zap.Error(err), zap.Uint("task_id", id))
		return domain.Task{}, err
	}

	return taskToDomain(task), nil
}

func (r *taskRepository) GetByUserID(ctx context.Context, userID uint) ([]domain.Task, error) {
	var tasks []models.Task

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error

	if err != nil {
		r.logger.Error("failed to list tasks", zap.Error(err), zap.Uint("user_id", userID))
		return nil, err
	}

	return tasksToDomain(tasks), nil
}

func (r *taskRepository) GetByProjectID(ctx context.Context, projectID uint) ([]domain.Task, error) {
	var tasks []models.Task

	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error

	if err != nil {
		r.logger.Error("failed to list tasks by project", zap.Error(err), zap.Uint("project_id", projectID))
		return nil, err
	}

	return tasksToDomain(tasks), nil
}

func (r *taskRepository) GetByUserIDAndStatus(ctx context.Context, userID uint, status domain.TaskStatus) ([]domain.Task, error) {
	var tasks []models.Task

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(status)).
		Order("created_at DESC").
		Find(&tasks).Error

	if err != nil {
		r.logger.Error("failed to filter tasks", zap.Error(err), zap.Uint("user_id", userID), zap.String("status", string(status)))
		return nil, err
	}

	return tasksToDomain(tasks), nil
}

func (r *taskRepository) Update(ctx context.Context, id uint, record UpdateTaskRecord) (domain.Task, error) {
	updates := make(map[string]interface{})

	if record.Title != nil {
		updates["title"] = *record.Title
	}

	if record.Description != nil {
		updates["description"] = *record.Description
	}

	if record.Status != nil {
		updates["status"] = string(*record.Status)
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.Task{}).
			Where("id = ?", id).
			Updates(updates).Error

		if err != nil {
			r.logger.Error("failed to update task", zap.Error(err), zap.Uint("task_id", id))
			return domain.Task{}, err
		}
	}

	return r.GetByID(ctx, id)
}

func (r *taskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Task{}, id).Error; err != nil {
		r.logger.Error("failed to delete task", zap.Error(err), zap.Uint("task_id", id))
		return err
	}

	return nil
}

func (r *taskRepository) BelongsToUser(ctx context.Context, id uint, userID uint) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error

	if err != nil {
		r.logger.Error("failed to check task ownership", zap.Error(err), zap.Uint("task_id", id))
		return false, err
	}

	return count > 0, nil
}
