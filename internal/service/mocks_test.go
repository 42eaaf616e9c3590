package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"task-manager-api/internal/models"
)

type mockAuditStore struct {
	mock.Mock
}

func (m *mockAuditStore) CreateAuditLog(ctx context.Context, action string, taskID uint, content *string) (*models.AuditLog, error) {
	args := m.Called(ctx, action, taskID, content)
	log, _ := args.Get(0).(*models.AuditLog)
	return log, args.Error(1)
}

func (m *mockAuditStore) ListAuditLogs(ctx context.Context) ([]models.AuditLog, error) {
	args := m.Called(ctx)
	logs, _ := args.Get(0).([]models.AuditLog)
	return logs, args.Error(1)
}
