package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/taskboard-dev/taskboard/internal/auth"
	"github.com/taskboard-dev/taskboard/internal/config"
	"github.com/taskboard-dev/taskboard/internal/handlers"
	"github.com/taskboard-dev/taskboard/internal/middleware"
	"github.com/taskboard-dev/taskboard/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, database *gorm.DB, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	users := repository.NewUserRepository(database, logger)
	projects := repository.NewProjectRepository(database, logger)
	tasks := repository.NewTaskRepository(database, logger)
	notifications := repository.NewNotificationRepository(database, logger)

	authHandler := handlers.NewAuthHandler(users, tokens, logger)
	projectHandler := handlers.NewProjectHandler(projects, tasks, logger)
	taskHandler := handlers.NewTaskHandler(tasks, logger)
	notificationHandler := handlers.NewNotificationHandler(notifications, logger)

	authRequired := middleware.AuthMiddleware(tokens, users)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.Signup)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", authRequired, authHandler.Me)
		}

		projectRoutes := api.Group("/projects", authRequired)
		{
			projectRoutes.POST("", projectHandler.CreateProject)
			projectRoutes.GET("", projectHandler.ListProjects)
			projectRoutes.GET("/:id", projectHandler.GetProject)
			projectRoutes.PUT("/:id", projectHandler.UpdateProject)
			projectRoutes.DELETE("/:id", projectHandler.DeleteProject)
			projectRoutes.GET("/:id/tasks", projectHandler.ListProjectTasks)
		}

		taskRoutes := api.Group("/tasks", authRequired)
		{
			taskRoutes.POST("", taskHandler.CreateTask)
			taskRoutes.GET("", taskHandler.ListTasks)
			taskRoutes.GET("/:id", taskHandler.GetTask)
			taskRoutes.PUT("/:id", taskHandler.UpdateTask)
			taskRoutes.DELETE("/:id", taskHandler.DeleteTask)
		}

		notificationRoutes := api.Group("/notifications", authRequired)
		{
			notificationRoutes.POST("", notificationHandler.CreateNotification)
			notificationRoutes.GET("", notificationHandler.ListNotifications)
			notificationRoutes.PUT("/:id/read", notificationHandler.MarkAsRead)
			notificationRoutes.POST("/read-all", notificationHandler.MarkAllAsRead)
			notificationRoutes.DELETE("/:id", notificationHandler.DeleteNotification)
		}
	}

	return r
}
