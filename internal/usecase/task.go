package usecase

import (
	"context"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/repository"
)

type CreateTaskInput struct {
	UserID      uint
	Title       string
	Description *string
	ProjectID   *uint
	Status      string
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

type CreateTaskUseCase struct {
	tasks repository.TaskRepository
}

func NewCreateTaskUseCase(tasks repository.TaskRepository) *CreateTaskUseCase {
	return &CreateTaskUseCase{tasks: tasks}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (domain.Task, error) {
	if err := domain.ValidateTaskTitle(input.Title); err != nil {
		return domain.Task{}, err
	}

	status := domain.TaskStatusTodo

	if input.Status != "" {
		if err := domain.ValidateTaskStatus(input.Status); err != nil {
			return domain.Task{}, err
		}

		status = domain.TaskStatus(input.Status)
	}

	return uc.tasks.Create(ctx, repository.CreateTaskRecord{
		UserID:      input.UserID,
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
	})
}

type ListTasksUseCase struct {
	tasks repository.TaskRepository
}

func NewListTasksUseCase(tasks repository.TaskRepository) *ListTasksUseCase {
	return &ListTasksUseCase{tasks: tasks}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, userID uint) ([]domain.Task, error) {
	return uc.tasks.GetByUserID(ctx, userID)
}

type FilterTasksByStatusUseCase struct {
	tasks repository.TaskRepository
}

func NewFilterTasksByStatusUseCase(tasks repository.TaskRepository) *FilterTasksByStatusUseCase {
	return &FilterTasksByStatusUseCase{tasks: tasks}
}

func (uc *FilterTasksByStatusUseCase) Execute(ctx context.Context, userID uint, status string) ([]domain.Task, error) {
	if err := domain.ValidateTaskStatus(status); err != nil {
		return nil, err
	}

	return uc.tasks.GetByUserIDAndStatus(ctx, userID, domain.TaskStatus(status))
}

type GetTaskUseCase struct {
	tasks repository.TaskRepository
}

func NewGetTaskUseCase(tasks repository.TaskRepository) *GetTaskUseCase {
	return &GetTaskUseCase{tasks: tasks}
}

func (uc *GetTaskUseCase) Execute(ctx context.Context, taskID uint, userID uint) (domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, taskID)

	if err != nil {
		return domain.Task{}, err
	}

	if task.UserID != userID {
		return domain.Task{}, domain.NewForbiddenError("You do not have permission to view this task")
	}

	return task, nil
}

type UpdateTaskUseCase struct {
	tasks repository.TaskRepository
}

func NewUpdateTaskUseCase(tasks repository.TaskRepository) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{tasks: tasks}
}

func (uc *UpdateTaskUseCase) Execute(ctx context.Context, taskID uint, userID uint, input UpdateTaskInput) (domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, taskID)

	if err != nil {
		return domain.Task{}, err
	}

	if task.UserID != userID {
		return domain.Task{}, domain.NewForbiddenError("You do not have permission to update this task")
	}

	if input.Title != nil {
		if err := domain.ValidateTaskTitle(*input.Title); err != nil {
			return domain.Task{}, err
		}
	}

	var status *domain.TaskStatus

	if input.Status != nil {
		if err := domain.ValidateTaskStatus(*input.Status); err != nil {
			return domain.Task{}, err
		}

		value := domain.TaskStatus(*input.Status)
		status = &value
	}

	return uc.tasks.Update(ctx, taskID, repository.UpdateTaskRecord{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
	})
}

type DeleteTaskUseCase struct {
	tasks repository.TaskRepository
}

func NewDeleteTaskUseCase(tasks repository.TaskRepository) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{tasks: tasks}
}

func (uc *DeleteTaskUseCase) Execute(ctx context.Context, taskID uint, userID uint) error {
	task, err := uc.tasks.GetByID(ctx, taskID)

	if err != nil {
		return err
	}

	if task.UserID != userID {
		return domain.NewForbiddenError("You do not have permission to delete this task")
	}

	return uc.tasks.Delete(ctx, taskID)
}

// ListTasksByProjectUseCase is the one place two repositories compose: the
// caller must own the project before its tasks are listed.
type ListTasksByProjectUseCase struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
}

func NewListTasksByProjectUseCase(tasks repository.TaskRepository, projects repository.ProjectRepository) *ListTasksByProjectUseCase {
	return &ListTasksByProjectUseCase{tasks: tasks, projects: projects}
}

func (uc *ListTasksByProjectUseCase) Execute(ctx context.Context, projectID uint, userID uint) ([]domain.Task, error) {
	if _, err := uc.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	isOwner, err := uc.projects.BelongsToUser(ctx, projectID, userID)

	if err != nil {
		return nil, err
	}

	if !isOwner {
		return nil, domain.NewForbiddenError("You do not have access to this project")
	}

	return uc.tasks.GetByProjectID(ctx, projectID)
}
