package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager-api/internal/models"
	"task-manager-api/internal/testdb"
)

func TestAuditRepositoryAppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewAuditRepo(testdb.Open(t))

	content := `{"title":"a","description":"b"}`
	created, err := repo.CreateAuditLog(ctx, models.ActionCreateTask, 1, &content)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.WithinDuration(t, time.Now(), created.Timestamp, time.Minute)

	_, err = repo.CreateAuditLog(ctx, models.ActionDeleteTask, 1, nil)
	require.NoError(t, err)

	logs, err := repo.ListAuditLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, models.ActionDeleteTask, logs[0].Action)
	assert.Nil(t, logs[0].UpdatedContent)
	assert.Equal(t, models.ActionCreateTask, logs[1].Action)
	require.NotNil(t, logs[1].UpdatedContent)
	assert.Equal(t, content, *logs[1].UpdatedContent)
}

func TestListAuditLogsEmpty(t *testing.T) {
	logs, err := NewAuditRepo(testdb.Open(t)).ListAuditLogs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}
