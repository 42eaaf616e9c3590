package repository

import (
	"context"

	"task-manager-api/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog appends a new audit log entry. content may be nil.
func (r *AuditRepository) CreateAuditLog(ctx context.Context, action string, taskID uint, content *string) (*models.AuditLog, error) {
	log := &models.AuditLog{
		Action:         action,
		TaskID:         taskID,
		UpdatedContent: content,
	}
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// ListAuditLogs returns every audit log entry, newest first
func (r *AuditRepository) ListAuditLogs(ctx context.Context) ([]models.AuditLog, error) {
	logs := []models.AuditLog{}
	err := r.db.WithContext(ctx).Order("timestamp DESC").Order("id DESC").Find(&logs).Error
	return logs, err
}
