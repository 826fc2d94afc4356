package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/johnquangdev/team-ops/errors"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title          string
	Description    string
	AssigneeID     uuid.UUID
	EstimatedHours float64
	Status         entities.TaskStatus
	Priority       entities.TaskPriority
	DueDate        *time.Time
	Project        string
}

// UpdateTaskInput represents a partial task update
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	AssigneeID     *uuid.UUID
	EstimatedHours *float64
	Status         *entities.TaskStatus
	Priority       *entities.TaskPriority
	DueDate        *time.Time
	Project        *string
}

// Service handles task business logic
type Service interface {
	List(ctx context.Context, filters repositories.TaskFilters) ([]*entities.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (*entities.Task, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*entities.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	taskRepo   repositories.TaskRepository
	memberRepo repositories.MemberRepository
}

// NewService creates a new task service
func NewService(taskRepo repositories.TaskRepository, memberRepo repositories.MemberRepository) Service {
	return &service{
		taskRepo:   taskRepo,
		memberRepo: memberRepo,
	}
}

// List retrieves tasks with filters, assignee resolved
func (s *service) List(ctx context.Context, filters repositories.TaskFilters) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get retrieves one task with its assignee resolved
func (s *service) Get(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	t, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("task")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// Create creates a new task after checking the assignee reference
func (s *service) Create(ctx context.Context, input CreateTaskInput) (*entities.Task, error) {
	if err := s.checkAssignee(ctx, input.AssigneeID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entities.TaskStatusTodo
	}
	priority := input.Priority
	if priority == "" {
		priority = entities.TaskPriorityMedium
	}

	t := &entities.Task{
		Title:          input.Title,
		Description:    input.Description,
		AssigneeID:     input.AssigneeID,
		EstimatedHours: input.EstimatedHours,
		Status:         status,
		Priority:       priority,
		DueDate:        input.DueDate,
		Project:        input.Project,
	}

	if err := s.taskRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	created, err := s.taskRepo.FindByID(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return created, nil
}

// Update merges a partial update into an existing task
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*entities.Task, error) {
	t, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("task")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.AssigneeID != nil {
		if err := s.checkAssignee(ctx, *input.AssigneeID); err != nil {
			return nil, err
		}
		t.AssigneeID = *input.AssigneeID
		t.Assignee = nil
	}
	if input.EstimatedHours != nil {
		t.EstimatedHours = *input.EstimatedHours
	}
	if input.Status != nil {
		t.Status = *input.Status
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	}
	if input.Project != nil {
		t.Project = *input.Project
	}

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	updated, err := s.taskRepo.FindByID(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return updated, nil
}

// Delete removes a task. Idempotent: deleting an unknown id succeeds.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *service) checkAssignee(ctx context.Context, id uuid.UUID) error {
	ok, err := s.memberRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check assignee: %w", err)
	}
	if !ok {
		return apperrors.ErrBadReference("assignee", id.String())
	}
	return nil
}
