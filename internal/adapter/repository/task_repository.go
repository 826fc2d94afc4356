package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID retrieves a task by its ID with its assignee resolved
func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	var task entities.Task
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Where("id = ?", id).
		First(&task).Error

	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks with filters, newest first
func (r *taskRepository) List(ctx context.Context, filters repositories.TaskFilters) ([]*entities.Task, error) {
	var tasks []*entities.Task
	query := r.db.WithContext(ctx).Model(&entities.Task{}).Preload("Assignee")

	if filters.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filters.AssigneeID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Project != "" {
		query = query.Where("project = ?", filters.Project)
	}

	err := query.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// Update persists changes to an existing task
func (r *taskRepository) Update(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete removes a task
func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Task{}, "id = ?", id).Error
}

// DeleteByAssignee removes all tasks assigned to a member
func (r *taskRepository) DeleteByAssignee(ctx context.Context, assigneeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("assignee_id = ?", assigneeID).
		Delete(&entities.Task{}).Error
}

// LoadByAssignee aggregates estimated hours and counts of non-done tasks
// grouped by assignee
func (r *taskRepository) LoadByAssignee(ctx context.Context) (map[uuid.UUID]repositories.AssigneeLoad, error) {
	var rows []struct {
		AssigneeID  uuid.UUID
		Hours       float64
		ActiveTasks int
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Select("assignee_id, COALESCE(SUM(estimated_hours), 0) AS hours, COUNT(*) AS active_tasks").
		Where("status <> ?", entities.TaskStatusDone).
		Group("assignee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	loads := make(map[uuid.UUID]repositories.AssigneeLoad, len(rows))
	for _, row := range rows {
		loads[row.AssigneeID] = repositories.AssigneeLoad{
			Hours:       row.Hours,
			ActiveTasks: row.ActiveTasks,
		}
	}
	return loads, nil
}

// FindDueBetween retrieves non-done tasks due inside [from, to]
func (r *taskRepository) FindDueBetween(ctx context.Context, from, to time.Time, limit int) ([]*entities.Task, error) {
	var tasks []*entities.Task
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Where("due_date >= ? AND due_date <= ?", from, to).
		Where("status <> ?", entities.TaskStatusDone).
		Order("due_date ASC").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

// Count returns the total number of tasks
func (r *taskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Task{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of tasks in the given status
func (r *taskRepository) CountByStatus(ctx context.Context, status entities.TaskStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
