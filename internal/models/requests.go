package models

// CreateTaskRequest is the body of POST /api/tasks.
// Both fields must be present; emptiness is checked after sanitization.
type CreateTaskRequest struct {
	Title       *string `json:"title" binding:"required"`
	Description *string `json:"description" binding:"required"`
}

// UpdateTaskRequest is the body of PUT /api/tasks/:id. Absent or null fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ListTasksQuery holds the query parameters of GET /api/tasks
type ListTasksQuery struct {
	Page   *int   `form:"page"`
	Limit  *int   `form:"limit"`
	Search string `form:"search"`
}
