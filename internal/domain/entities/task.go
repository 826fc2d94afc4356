package entities

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents a unit of planned work assigned to a member
type Task struct {
	ID             uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title          string       `gorm:"type:varchar(255);not null" json:"title"`
	Description    string       `gorm:"type:text" json:"description"`
	AssigneeID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"assigneeId"`
	Assignee       *Member      `gorm:"foreignKey:AssigneeID;constraint:-" json:"assignee,omitempty"`
	EstimatedHours float64      `gorm:"default:0" json:"estimatedHours"`
	Status         TaskStatus   `gorm:"type:varchar(20);not null;default:'todo';index" json:"status"`
	Priority       TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	DueDate        *time.Time   `gorm:"index" json:"dueDate,omitempty"`
	Project        string       `gorm:"type:varchar(255)" json:"project"`
	CreatedAt      time.Time    `gorm:"default:now()" json:"createdAt"`
	UpdatedAt      time.Time    `gorm:"default:now()" json:"updatedAt"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// IsDone reports whether the task is in its terminal state
func (t *Task) IsDone() bool {
	return t.Status == TaskStatusDone
}
