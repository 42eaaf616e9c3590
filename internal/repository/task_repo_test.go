package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager-api/internal/models"
	"task-manager-api/internal/testdb"
)

func seedTasks(t *testing.T, repo *TaskRepository, n int) []models.Task {
	t.Helper()
	tasks := make([]models.Task, 0, n)
	for i := 1; i <= n; i++ {
		task := models.Task{
			Title:       fmt.Sprintf("Task %d", i),
			Description: fmt.Sprintf("Description %d", i),
		}
		require.NoError(t, repo.CreateTask(context.Background(), &task))
		tasks = append(tasks, task)
	}
	return tasks
}

func TestTaskRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo(testdb.Open(t))

	task := &models.Task{Title: "Buy milk", Description: "2 litres"}
	require.NoError(t, repo.CreateTask(ctx, task))
	assert.NotZero(t, task.ID)

	got, err := repo.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, *task, *got)

	require.NoError(t, repo.UpdateTaskFields(ctx, got, map[string]interface{}{"title": "Buy oat milk"}))
	updated, err := repo.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.Equal(t, "2 litres", updated.Description)

	require.NoError(t, repo.UpdateTaskFields(ctx, updated, nil))

	require.NoError(t, repo.DeleteTask(ctx, task.ID))
	_, err = repo.GetTaskByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	assert.ErrorIs(t, repo.DeleteTask(ctx, task.ID), ErrTaskNotFound)
}

func TestListTasksPaginatesNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo(testdb.Open(t))
	seeded := seedTasks(t, repo, 7)

	page1, total, err := repo.ListTasks(ctx, "", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, page1, 5)
	assert.Equal(t, seeded[6].ID, page1[0].ID)
	assert.Equal(t, seeded[2].ID, page1[4].ID)

	page2, total, err := repo.ListTasks(ctx, "", 5, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, page2, 2)
	assert.Equal(t, seeded[1].ID, page2[0].ID)
	assert.Equal(t, seeded[0].ID, page2[1].ID)

	empty, total, err := repo.ListTasks(ctx, "", 50, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestListTasksSearchMatchesTitleOrDescription(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo(testdb.Open(t))

	for _, task := range []models.Task{
		{Title: "groceries", Description: "eggs and bread"},
		{Title: "report", Description: "send groceries budget"},
		{Title: "gym", Description: "leg day"},
	} {
		task := task
		require.NoError(t, repo.CreateTask(ctx, &task))
	}

	tasks, total, err := repo.ListTasks(ctx, "groceries", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, tasks, 2)
	assert.Equal(t, "report", tasks[0].Title)
	assert.Equal(t, "groceries", tasks[1].Title)

	tasks, total, err = repo.ListTasks(ctx, "groceries", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, tasks, 1)

	tasks, total, err = repo.ListTasks(ctx, "swimming", 0, 5)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, tasks)
}

func TestCountTasks(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo(testdb.Open(t))
	seedTasks(t, repo, 12)

	total, err := repo.CountTasks(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)

	total, err = repo.CountTasks(ctx, "Task 1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	total, err = repo.CountTasks(ctx, "nothing")
	require.NoError(t, err)
	assert.Zero(t, total)
}
