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

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	ProjectID   *uint   `json:"projectId"`
	Status      string  `json:"status"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type TaskHandler struct {
	create *usecase.CreateTaskUseCase
	list   *usecase.ListTasksUseCase
	filter *usecase.FilterTasksByStatusUseCase
	get    *usecase.GetTaskUseCase
	update *usecase.UpdateTaskUseCase
	delete *usecase.DeleteTaskUseCase
	logger *zap.Logger
}

func NewTaskHandler(tasks repository.TaskRepository, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		create: usecase.NewCreateTaskUseCase(tasks),
		list:   usecase.NewListTasksUseCase(tasks),
		filter: usecase.NewFilterTasksByStatusUseCase(tasks),
		get:    usecase.NewGetTaskUseCase(tasks),
		update: usecase.NewUpdateTaskUseCase(tasks),
		delete: usecase.NewDeleteTaskUseCase(tasks),
		logger: logger,
	}
}

func (h *TaskHandler) CreateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.create.Execute(ctx.Request.Context(), usecase.CreateTaskInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Status:      req.Status,
	})

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewTaskResponse(task))
}

// ListTasks returns the caller's tasks, optionally filtered by status.
func (h *TaskHandler) ListTasks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	status := ctx.Query("status")

	var result []types.TaskResponse

	if status != "" {
		filtered, err := h.filter.Execute(ctx.Request.Context(), userID, status)

		if err != nil {
			respondError(ctx, h.logger, err)
			return
		}

		result = types.NewTaskResponseList(filtered)
	} else {
		listed, err := h.list.Execute(ctx.Request.Context(), userID)

		if err != nil {
			respondError(ctx, h.logger, err)
			return
		}

		result = types.NewTaskResponseList(listed)
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *TaskHandler) GetTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := parseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	task, err := h.get.Execute(ctx.Request.Context(), taskID, userID)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := parseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	var req UpdateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.update.Execute(ctx.Request.Context(), taskID, userID, usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := parseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	if err := h.delete.Execute(ctx.Request.Context(), taskID, userID); err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
