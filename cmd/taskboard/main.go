package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/taskboard-dev/taskboard/db"
	"github.com/taskboard-dev/taskboard/internal/config"
	"github.com/taskboard-dev/taskboard/internal/logger"
	"github.com/taskboard-dev/taskboard/internal/router"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger := logger.New(cfg.Env)
	defer zapLogger.Sync()

	database, err := db.Connect(cfg.DatabaseDSN)

	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.Migrate(database); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	r := router.NewRouter(cfg, database, zapLogger)

	zapLogger.Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	if err := r.Run(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
