package models

import "time"

// Audit actions recorded for task mutations
const (
	ActionCreateTask = "Create Task"
	ActionUpdateTask = "Update Task"
	ActionDeleteTask = "Delete Task"
)

// AuditLog represents the audit_logs table.
// Rows are append-only and keep TaskID after the task itself is deleted.
type AuditLog struct {
	ID             uint      `gorm:"primaryKey"`
	Timestamp      time.Time `gorm:"autoCreateTime;index"`
	Action         string    `gorm:"size:100;not null"`
	TaskID         uint      `gorm:"index;not null"`
	UpdatedContent *string   `gorm:"type:text"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditLogResponse is the API view of an AuditLog with its content decoded
type AuditLogResponse struct {
	ID             uint         `json:"id"`
	Timestamp      time.Time    `json:"timestamp"`
	Action         string       `json:"action"`
	TaskID         uint         `json:"task_id"`
	UpdatedContent FieldChanges `json:"updated_content"`
}

// ToResponse decodes the stored content. Content that cannot be decoded is reported as null.
func (l AuditLog) ToResponse() AuditLogResponse {
	resp := AuditLogResponse{
		ID:        l.ID,
		Timestamp: l.Timestamp,
		Action:    l.Action,
		TaskID:    l.TaskID,
	}
	if l.UpdatedContent != nil && *l.UpdatedContent != "" {
		var changes FieldChanges
		if err := changes.UnmarshalJSON([]byte(*l.UpdatedContent)); err == nil {
			resp.UpdatedContent = changes
		}
	}
	return resp
}
