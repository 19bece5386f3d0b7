package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/internal/auth"
	"github.com/taskboard-dev/taskboard/internal/repository"
	"github.com/taskboard-dev/taskboard/internal/types"
	"github.com/taskboard-dev/taskboard/internal/usecase"
	"github.com/taskboard-dev/taskboard/internal/utils"
	"go.uber.org/zap"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	signup *usecase.SignupUseCase
	login  *usecase.LoginUseCase
	logger *zap.Logger
}

func NewAuthHandler(users repository.UserRepository, tokens *auth.TokenManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		signup: usecase.NewSignupUseCase(users),
		login:  usecase.NewLoginUseCase(users, tokens),
		logger: logger,
	}
}

func (h *AuthHandler) Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.signup.Execute(ctx.Request.Context(), req.Email, req.Password, req.Name)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": types.NewUserResponse(user)})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Email and password are required"})
		return
	}

	result, err := h.login.Execute(ctx.Request.Context(), req.Email, req.Password)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":  types.NewUserResponse(result.User),
		"token": result.Token,
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    currentUser.ID,
			Email: currentUser.Email,
			Name:  currentUser.Name,
			Role:  currentUser.Role,
		},
	})
}
