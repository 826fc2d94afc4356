package task

import "time"

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title          string     `json:"title" validate:"required,min=1,max=255"`
	Description    string     `json:"description,omitempty"`
	Assignee       string     `json:"assignee" validate:"required,uuid"`
	EstimatedHours float64    `json:"estimatedHours,omitempty" validate:"omitempty,gte=0"`
	Status         string     `json:"status,omitempty" validate:"omitempty,oneof=todo in_progress done"`
	Priority       string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Project        string     `json:"project,omitempty" validate:"omitempty,max=255"`
}

// UpdateTaskRequest represents a partial task update
type UpdateTaskRequest struct {
	Title          *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description    *string    `json:"description,omitempty"`
	Assignee       *string    `json:"assignee,omitempty" validate:"omitempty,uuid"`
	EstimatedHours *float64   `json:"estimatedHours,omitempty" validate:"omitempty,gte=0"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,oneof=todo in_progress done"`
	Priority       *string    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Project        *string    `json:"project,omitempty" validate:"omitempty,max=255"`
}

// ListTasksRequest represents query parameters for listing tasks
type ListTasksRequest struct {
	Assignee string `query:"assignee" validate:"omitempty,uuid"`
	Status   string `query:"status" validate:"omitempty,oneof=todo in_progress done"`
	Project  string `query:"project"`
}
