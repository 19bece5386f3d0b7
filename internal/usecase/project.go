package usecase

import (
	"context"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/repository"
)

type CreateProjectInput struct {
	UserID      uint
	Name        string
	Description *string
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
}

type CreateProjectUseCase struct {
	projects repository.ProjectRepository
}

func NewCreateProjectUseCase(projects repository.ProjectRepository) *CreateProjectUseCase {
	return &CreateProjectUseCase{projects: projects}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (domain.Project, error) {
	if err := domain.ValidateProjectName(input.Name); err != nil {
		return domain.Project{}, err
	}

	return uc.projects.Create(ctx, repository.CreateProjectRecord{
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
	})
}

type ListProjectsUseCase struct {
	projects repository.ProjectRepository
}

func NewListProjectsUseCase(projects repository.ProjectRepository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projects: projects}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, userID uint) ([]domain.Project, error) {
	return uc.projects.GetByUserID(ctx, userID)
}

type GetProjectUseCase struct {
	projects repository.ProjectRepository
}

func NewGetProjectUseCase(projects repository.ProjectRepository) *GetProjectUseCase {
	return &GetProjectUseCase{projects: projects}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, projectID uint, userID uint) (domain.Project, error) {
	project, err := uc.projects.GetByID(ctx, projectID)

	if err != nil {
		return domain.Project{}, err
	}

	if project.UserID != userID {
		return domain.Project{}, domain.NewForbiddenError("You do not have access to this project")
	}

	return project, nil
}

type UpdateProjectUseCase struct {
	projects repository.ProjectRepository
}

func NewUpdateProjectUseCase(projects repository.ProjectRepository) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projects: projects}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, projectID uint, userID uint, input UpdateProjectInput) (domain.Project, error) {
	project, err := uc.projects.GetByID(ctx, projectID)

	if err != nil {
		return domain.Project{}, err
	}

	if project.UserID != userID {
		return domain.Project{}, domain.NewForbiddenError("You do not have permission to update this project")
	}

	if input.Name != nil {
		if err := domain.ValidateProjectName(*input.Name); err != nil {
			return domain.Project{}, err
		}
	}

	return uc.projects.Update(ctx, projectID, repository.UpdateProjectRecord{
		Name:        input.Name,
		Description: input.Description,
	})
}

type DeleteProjectUseCase struct {
	projects repository.ProjectRepository
}

func NewDeleteProjectUseCase(projects repository.ProjectRepository) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projects: projects}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, projectID uint, userID uint) error {
	project, err := uc.projects.GetByID(ctx, projectID)

	if err != nil {
		return err
	}

	if project.UserID != userID {
		return domain.NewForbiddenError("You do not have permission to delete this project")
	}

	return uc.projects.Delete(ctx, projectID)
}
