package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/internal/repository"
	"github.com/taskboard-dev/taskboard/internal/types"
	"github.com/taskboard-dev/taskboard/internal/usecase"
	"github.com/taskboard-dev/taskboard/internal/utils"
	"go.uber.org/zap"
)

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type ProjectHandler struct {
	create       *usecase.CreateProjectUseCase
	list         *usecase.ListProjectsUseCase
	get          *usecase.GetProjectUseCase
	update       *usecase.UpdateProjectUseCase
	delete       *usecase.DeleteProjectUseCase
	projectTasks *usecase.ListTasksByProjectUseCase
	logger       *zap.Logger
}

func NewProjectHandler(projects repository.ProjectRepository, tasks repository.TaskRepository, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		create:       usecase.NewCreateProjectUseCase(projects),
		list:         usecase.NewListProjectsUseCase(projects),
		get:          usecase.NewGetProjectUseCase(projects),
		update:       usecase.NewUpdateProjectUseCase(projects),
		delete:       usecase.NewDeleteProjectUseCase(projects),
		projectTasks: usecase.NewListTasksByProjectUseCase(tasks, projects),
		logger:       logger,
	}
}

func (h *ProjectHandler) CreateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.create.Execute(ctx.Request.Context(), usecase.CreateProjectInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewProjectResponse(project))
}

func (h *ProjectHandler) ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projects, err := h.list.Execute(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponseList(projects))
}

func (h *ProjectHandler) GetProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := parseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	project, err := h.get.Execute(ctx.Request.Context(), projectID, userID)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponse(project))
}

func (h *ProjectHandler) UpdateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := parseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	var req UpdateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.update.Execute(ctx.Request.Context(), projectID, userID, usecase.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponse(project))
}

func (h *ProjectHandler) DeleteProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := parseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	if err := h.delete.Execute(ctx.Request.Context(), projectID, userID); err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListProjectTasks lists the tasks inside a project the caller owns.
func (h *ProjectHandler) ListProjectTasks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := parseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	tasks, err := h.projectTasks.Execute(ctx.Request.Context(), projectID, userID)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewTaskResponseList(tasks))
}
