package service

import (
	"context"
	"encoding/json"
	"fmt"

	"task-manager-api/internal/models"
)

// AuditStore persists audit log rows
type AuditStore interface {
	CreateAuditLog(ctx context.Context, action string, taskID uint, content *string) (*models.AuditLog, error)
	ListAuditLogs(ctx context.Context) ([]models.AuditLog, error)
}

type AuditService struct {
	auditRepo AuditStore
}

func NewAuditService(auditRepo AuditStore) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record appends an audit entry for a task mutation. Empty changes are stored as NULL.
func (s *AuditService) Record(ctx context.Context, action string, taskID uint, changes models.FieldChanges) error {
	var content *string
	if len(changes) > 0 {
		encoded, err := json.Marshal(changes)
		if err != nil {
			return fmt.Errorf("failed to encode audit content: %w", err)
		}
		str := string(encoded)
		content = &str
	}

	if _, err := s.auditRepo.CreateAuditLog(ctx, action, taskID, content); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// List returns every audit entry newest first with its content decoded
func (s *AuditService) List(ctx context.Context) ([]models.AuditLogResponse, error) {
	logs, err := s.auditRepo.ListAuditLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	result := make([]models.AuditLogResponse, 0, len(logs))
	for _, log := range logs {
		result = append(result, log.ToResponse())
	}
	return result, nil
}
