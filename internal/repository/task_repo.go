package repository

import (
	"context"
	"errors"

	"task-manager-api/internal/models"

	"gorm.io/gorm"
)

// ErrTaskNotFound is returned when no task has the requested id.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask inserts a task and fills in its ID
func (r *TaskRepository) CreateTask(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetTaskByID retrieves a task by ID
func (r *TaskRepository) GetTaskByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// ListTasks returns one page of tasks, newest first, plus the number of tasks matching search.
// An empty search matches every task.
func (r *TaskRepository) ListTasks(ctx context.Context, search string, offset, limit int) ([]models.Task, int64, error) {
	query := r.searchQuery(ctx, search)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tasks := []models.Task{}
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// CountTasks returns the number of tasks matching search
func (r *TaskRepository) CountTasks(ctx context.Context, search string) (int64, error) {
	var total int64
	err := r.searchQuery(ctx, search).Count(&total).Error
	return total, err
}

func (r *TaskRepository) searchQuery(ctx context.Context, search string) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Task{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	return query.Session(&gorm.Session{})
}

// UpdateTaskFields writes the given columns of task in a single statement
func (r *TaskRepository) UpdateTaskFields(ctx context.Context, task *models.Task, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(task).Updates(columns).Error
}

// DeleteTask physically removes a task
func (r *TaskRepository) DeleteTask(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
