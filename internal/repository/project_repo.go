package repository

import (
	"context"
	"errors"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateProjectRecord struct {
	UserID      uint
	Name        string
	Description *string
}

type UpdateProjectRecord struct {
	Name        *string
	Description *string
}

type ProjectRepository interface {
	Create(ctx context.Context, record CreateProjectRecord) (domain.Project, error)
	GetByID(ctx context.Context, id uint) (domain.Project, error)
	GetByUserID(ctx context.Context, userID uint) ([]domain.Project, error)
	Update(ctx context.Context, id uint, record UpdateProjectRecord) (domain.Project, error)
	Delete(ctx context.Context, id uint) error
	BelongsToUser(ctx context.Context, id uint, userID uint) (bool, error)
}

type projectRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProjectRepository(db *gorm.DB, logger *zap.Logger) ProjectRepository {
	return &projectRepository{db: db, logger: logger}
}

func (r *projectRepository) Create(ctx context.Context, record CreateProjectRecord) (domain.Project, error) {
	project := models.Project{
		UserID:      record.UserID,
		Name:        record.Name,
		Description: record.Description,
	}

	if err := r.db.WithContext(ctx).Create(&project).Error; err != nil {
		r.logger.Error("failed to create project", zap.Error(err), zap.Uint("user_id", record.UserID))
		return domain.Project{}, err
	}

	return projectToDomain(project), nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (domain.Project, error) {
	var project models.Project

	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Project{}, domain.NewNotFoundError("Project", id)
		}

		r.logger.Error("failed to fetch project", zap.Error(err), zap.Uint("project_id", id))
		return domain.Project{}, err
	}

	return projectToDomain(project), nil
}

func (r *projectRepository) GetByUserID(ctx context.Context, userID uint) ([]domain.Project, error) {
	var projects []models.Project

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error

	if err != nil {
		r.logger.Error("failed to list projects", zap.Error(err), zap.Uint("user_id", userID))
		return nil, err
	}

	return projectsToDomain(projects), nil
}

func (r *projectRepository) Update(ctx context.Context, id uint, record UpdateProjectRecord) (domain.Project, error) {
	updates := make(map[string]interface{})

	if record.Name != nil {
		updates["name"] = *record.Name
	}

	if record.Description != nil {
		updates["description"] = *record.Description
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.Project{}).
			Where("id = ?", id).
			Updates(updates).Error

		if err != nil {
			r.logger.Error("failed to update project", zap.Error(err), zap.Uint("project_id", id))
			return domain.Project{}, err
		}
	}

	return r.GetByID(ctx, id)
}

// Delete removes the project; tasks referencing it are detached by the
// ON DELETE SET NULL constraint on tasks.project_id.
func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Project{}, id).Error; err != nil {
		r.logger.Error("failed to delete project", zap.Error(err), zap.Uint("project_id", id))
		return err
	}

	return nil
}

func (r *projectRepository) BelongsToUser(ctx context.Context, id uint, userID uint) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error

	if err != nil {
		r.logger.Error("failed to check project ownership", zap.Error(err), zap.Uint("project_id", id))
		return false, err
	}

	return count > 0, nil
}
