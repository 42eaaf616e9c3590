package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-manager-api/internal/config"
	"task-manager-api/internal/database"
	"task-manager-api/internal/handler"
	"task-manager-api/internal/logger"
	"task-manager-api/internal/repository"
	"task-manager-api/internal/service"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Structured logging
	appLogger := logger.Setup(cfg.Log)

	// 3. Database connection and schema
	db, err := database.Connect(cfg)
	if err != nil {
		appLogger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		appLogger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	// 4. Repositories and services
	taskRepo := repository.NewTaskRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	auditService := service.NewAuditService(auditRepo)
	taskService := service.NewTaskService(taskRepo, auditService)

	// 5. Router
	gin.SetMode(cfg.Server.GinMode)
	router := handler.NewRouter(cfg, appLogger,
		handler.NewTaskHandler(taskService),
		handler.NewLogHandler(auditService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("server shutdown failed", "error", err)
	}
	appLogger.Info("server exited")
}
