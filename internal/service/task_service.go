package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"task-manager-api/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
)

// TaskStore persists tasks
type TaskStore interface {
	CreateTask(ctx context.Context, task *models.Task) error
	GetTaskByID(ctx context.Context, id uint) (*models.Task, error)
	ListTasks(ctx context.Context, search string, offset, limit int) ([]models.Task, int64, error)
	CountTasks(ctx context.Context, search string) (int64, error)
	UpdateTaskFields(ctx context.Context, task *models.Task, columns map[string]interface{}) error
	DeleteTask(ctx context.Context, id uint) error
}

type TaskService struct {
	taskRepo     TaskStore
	auditService *AuditService
}

func NewTaskService(taskRepo TaskStore, auditService *AuditService) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		auditService: auditService,
	}
}

// CreateTask sanitizes and stores a new task, then records a "Create Task" entry
func (s *TaskService) CreateTask(ctx context.Context, title, description string) (*models.Task, error) {
	title = SanitizeText(title)
	description = SanitizeText(description)

	if title == "" || description == "" {
		return nil, newValidationError("Title and Description must not be empty.")
	}

	task := &models.Task{Title: title, Description: description}
	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	content := models.FieldChanges{
		{Field: "title", Value: task.Title},
		{Field: "description", Value: task.Description},
	}
	if err := s.auditService.Record(ctx, models.ActionCreateTask, task.ID, content); err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks returns one page of tasks. page and limit values below 1 fall back to the defaults.
func (s *TaskService) ListTasks(ctx context.Context, page, limit int, search string) (*models.TaskPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	search = strings.TrimSpace(search)
	result := &models.TaskPage{Page: page, Limit: limit}

	// an offset past math.MaxInt cannot hold any rows
	if page-1 > math.MaxInt/limit {
		total, err := s.taskRepo.CountTasks(ctx, search)
		if err != nil {
			return nil, fmt.Errorf("failed to count tasks: %w", err)
		}
		result.Data = []models.Task{}
		result.Total = total
		return result, nil
	}

	tasks, total, err := s.taskRepo.ListTasks(ctx, search, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	result.Data = tasks
	result.Total = total
	return result, nil
}

// UpdateTask applies the non-nil fields that differ from the stored task.
// An "Update Task" entry holding only the changed fields is recorded when anything changed.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, title, description *string) (*models.Task, error) {
	task, err := s.taskRepo.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var changes models.FieldChanges

	if title != nil {
		newTitle := SanitizeText(*title)
		if newTitle == "" {
			return nil, newValidationError("Title must not be empty.")
		}
		if newTitle != task.Title {
			changes.Set("title", newTitle)
		}
	}

	if description != nil {
		newDesc := SanitizeText(*description)
		if newDesc == "" {
			return nil, newValidationError("Description must not be empty.")
		}
		if newDesc != task.Description {
			changes.Set("description", newDesc)
		}
	}

	if len(changes) == 0 {
		return task, nil
	}

	if err := s.taskRepo.UpdateTaskFields(ctx, task, changes.Columns()); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if v, ok := changes.Get("title"); ok {
		task.Title = v
	}
	if v, ok := changes.Get("description"); ok {
		task.Description = v
	}

	if err := s.auditService.Record(ctx, models.ActionUpdateTask, task.ID, changes); err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask removes a task and records a "Delete Task" entry without content
func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if _, err := s.taskRepo.GetTaskByID(ctx, id); err != nil {
		return err
	}

	if err := s.taskRepo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return s.auditService.Record(ctx, models.ActionDeleteTask, id, nil)
}
