package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
)

// TaskFilters represents filter options for listing tasks
type TaskFilters struct {
	AssigneeID *uuid.UUID
	Status     *entities.TaskStatus
	Project    string
}

// AssigneeLoad is the per-member aggregate over non-done tasks
type AssigneeLoad struct {
	Hours       float64
	ActiveTasks int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *entities.Task) error

	// FindByID retrieves a task by its ID with its assignee resolved
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Task, error)

	// List retrieves tasks with filters, assignee resolved, newest first
	List(ctx context.Context, filters TaskFilters) ([]*entities.Task, error)

	// Update persists changes to an existing task
	Update(ctx context.Context, task *entities.Task) error

	// Delete removes a task
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAssignee removes all tasks assigned to a member
	DeleteByAssignee(ctx context.Context, assigneeID uuid.UUID) error

	// LoadByAssignee aggregates estimated hours and counts of non-done
	// tasks grouped by assignee
	LoadByAssignee(ctx context.Context) (map[uuid.UUID]AssigneeLoad, error)

	// FindDueBetween retrieves non-done tasks with a due date inside
	// [from, to], ordered by due date ascending, limited
	FindDueBetween(ctx context.Context, from, to time.Time, limit int) ([]*entities.Task, error)

	// Count returns the total number of tasks
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns the number of tasks in the given status
	CountByStatus(ctx context.Context, status entities.TaskStatus) (int64, error)
}
