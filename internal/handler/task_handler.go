package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"task-manager-api/internal/models"
	"task-manager-api/internal/repository"
	"task-manager-api/internal/service"
	"task-manager-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask handles POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), *req.Title, *req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ListTasks handles GET /api/tasks?page=&limit=&search=
func (h *TaskHandler) ListTasks(c *gin.Context) {
	for _, key := range []string{"page", "limit"} {
		if v, ok := c.GetQuery(key); ok && strings.TrimSpace(v) == "" {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+key+" must be an integer")
			return
		}
	}

	var query models.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	page, limit := service.DefaultPage, service.DefaultLimit
	if query.Page != nil {
		page = *query.Page
	}
	if query.Limit != nil {
		limit = *query.Limit
	}

	result, err := h.taskService.ListTasks(c.Request.Context(), page, limit, query.Search)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateTask handles PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), id, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Task deleted successfully")
}

func parseTaskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task ID")
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto HTTP statuses. Unexpected errors are
// attached to the context for the request logger and hidden from the client.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.ErrorResponse(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, repository.ErrTaskNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Task not found")
	default:
		_ = c.Error(err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
