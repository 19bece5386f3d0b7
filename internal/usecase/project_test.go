package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/repository"
)

func TestCreateProject_ValidatesName(t *testing.T) {
	repo := &mockProjectRepo{
		createFunc: func(ctx context.Context, record repository.CreateProjectRecord) (domain.Project, error) {
			return domain.Project{ID: 1, UserID: record.UserID, Name: record.Name}, nil
		},
	}

	uc := NewCreateProjectUseCase(repo)

	for _, name := range []string{"", "   ", strings.Repeat("p", 256)} {
		_, err := uc.Execute(context.Background(), CreateProjectInput{UserID: 1, Name: name})

		if domain.KindOf(err) != domain.KindValidation {
			t.Fatalf("expected validation error for name %q, got %v", name, err)
		}
	}

	project, err := uc.Execute(context.Background(), CreateProjectInput{UserID: 1, Name: "P"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if project.UserID != 1 || project.Name != "P" {
		t.Fatalf("unexpected project: %+v", project)
	}
}

func TestUpdateProject_OwnershipAndValidation(t *testing.T) {
	repo := &mockProjectRepo{
		getByIDFunc: func(ctx context.Context, id uint) (domain.Project, error) {
			if id == 404 {
				return domain.Project{}, domain.NewNotFoundError("Project", id)
			}

			return domain.Project{ID: id, UserID: 1, Name: "P"}, nil
		},
		updateFunc: func(ctx context.Context, id uint, record repository.UpdateProjectRecord) (domain.Project, error) {
			updated := domain.Project{ID: id, UserID: 1, Name: "P"}

			if record.Name != nil {
				updated.Name = *record.Name
			}

			if record.Description != nil {
				updated.Description = record.Description
			}

			return updated, nil
		},
	}

	uc := NewUpdateProjectUseCase(repo)

	if _, err := uc.Execute(context.Background(), 404, 1, UpdateProjectInput{}); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}

	if _, err := uc.Execute(context.Background(), 1, 2, UpdateProjectInput{}); domain.KindOf(err) != domain.KindForbidden {
		t.Fatalf("expected forbidden error, got %v", err)
	}

	if _, err := uc.Execute(context.Background(), 1, 1, UpdateProjectInput{Name: strPtr(" ")}); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	project, err := uc.Execute(context.Background(), 1, 1, UpdateProjectInput{Name: strPtr("Renamed")})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if project.Name != "Renamed" {
		t.Fatalf("expected renamed project, got %q", project.Name)
	}
}

func TestDeleteProject(t *testing.T) {
	repo := &mockProjectRepo{
		getByIDFunc: func(ctx context.Context, id uint) (domain.Project, error) {
			return domain.Project{ID: id, UserID: 1, Name: "P"}, nil
		},
		deleteFunc: func(ctx context.Context, id uint) error {
			return nil
		},
	}

	uc := NewDeleteProjectUseCase(repo)

	if err := uc.Execute(context.Background(), 1, 2); domain.KindOf(err) != domain.KindForbidden {
		t.Fatalf("expected forbidden error, got %v", err)
	}

	if repo.deleteCalls != 0 {
		t.Fatal("delete must not reach the repository on ownership mismatch")
	}

	if err := uc.Execute(context.Background(), 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.deleteCalls != 1 {
		t.Fatalf("expected one delete call, got %d", repo.deleteCalls)
	}
}

func TestGetProject(t *testing.T) {
	repo := &mockProjectRepo{
		getByIDFunc: func(ctx context.Context, id uint) (domain.Project, error) {
			return domain.Project{ID: id, UserID: 1, Name: "P"}, nil
		},
	}

	uc := NewGetProjectUseCase(repo)

	if _, err := uc.Execute(context.Background(), 1, 2); domain.KindOf(err) != domain.KindForbidden {
		t.Fatalf("expected forbidden error, got %v", err)
	}

	project, err := uc.Execute(context.Background(), 1, 1)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if project.ID != 1 {
		t.Fatalf("expected project 1, got %d", project.ID)
	}
}
