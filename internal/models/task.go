package models

// Task represents the tasks table
type Task struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
}

// TableName specifies the table name for Task model
func (Task) TableName() string {
	return "tasks"
}

// TaskPage is one page of a filtered task listing
type TaskPage struct {
	Data  []Task `json:"data"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Total int64  `json:"total"`
}
