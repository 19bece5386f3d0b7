package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/internal/repository"
	"github.com/taskboard-dev/taskboard/internal/types"
	"github.com/taskboard-dev/taskboard/internal/usecase"
	"github.com/taskboard-dev/taskboard/internal/utils"
	"go.uber.org/zap"
)

type CreateNotificationRequest struct {
	Type     string                 `json:"type" binding:"required"`
	Title    string                 `json:"title" binding:"required"`
	Message  string                 `json:"message" binding:"required"`
	Metadata map[string]interface{} `json:"metadata"`
}

type NotificationHandler struct {
	create      *usecase.CreateNotificationUseCase
	list        *usecase.ListNotificationsUseCase
	markRead    *usecase.MarkNotificationAsReadUseCase
	markAllRead *usecase.MarkAllNotificationsAsReadUseCase
	delete      *usecase.DeleteNotificationUseCase
	logger      *zap.Logger
}

func NewNotificationHandler(notifications repository.NotificationRepository, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		create:      usecase.NewCreateNotificationUseCase(notifications),
		list:        usecase.NewListNotificationsUseCase(notifications),
		markRead:    usecase.NewMarkNotificationAsReadUseCase(notifications),
		markAllRead: usecase.NewMarkAllNotificationsAsReadUseCase(notifications),
		delete:      usecase.NewDeleteNotificationUseCase(notifications),
		logger:      logger,
	}
}

func (h *NotificationHandler) CreateNotification(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateNotificationRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var metadata []byte

	if req.Metadata != nil {
		metadata, err = json.Marshal(req.Metadata)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid metadata format"})
			return
		}
	}

	notification, err := h.create.Execute(ctx.Request.Context(), usecase.CreateNotificationInput{
		UserID:   userID,
		Type:     req.Type,
		Title:    req.Title,
		Message:  req.Message,
		Metadata: metadata,
	})

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewNotificationResponse(notification))
}

func (h *NotificationHandler) ListNotifications(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	unreadOnly := ctx.Query("unread") == "true"

	notifications, err := h.list.Execute(ctx.Request.Context(), userID, unreadOnly)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewNotificationResponseList(notifications))
}

func (h *NotificationHandler) MarkAsRead(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	notificationID, err := parseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	notification, err := h.markRead.Execute(ctx.Request.Context(), notificationID, userID)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewNotificationResponse(notification))
}

func (h *NotificationHandler) MarkAllAsRead(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.markAllRead.Execute(ctx.Request.Context(), userID); err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) DeleteNotification(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	notificationID, err := parseIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	if err := h.delete.Execute(ctx.Request.Context(), notificationID, userID); err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
