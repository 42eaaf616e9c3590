package handler

import (
	"log/slog"
	"net/http"

	"task-manager-api/internal/config"
	"task-manager-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with middleware and every route registered
func NewRouter(cfg *config.Config, logger *slog.Logger, tasks *TaskHandler, logs *LogHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Task Manager API running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "task-manager-api",
		})
	})

	api := r.Group("/api")
	api.Use(middleware.BasicAuth(cfg.Auth))
	{
		api.POST("/tasks", tasks.CreateTask)
		api.GET("/tasks", tasks.ListTasks)
		api.PUT("/tasks/:id", tasks.UpdateTask)
		api.DELETE("/tasks/:id", tasks.DeleteTask)

		api.GET("/logs", logs.ListLogs)
	}

	return r
}
