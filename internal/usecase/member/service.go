package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/johnquangdev/team-ops/errors"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

// MemberWithLoad is a member annotated with current workload figures for
// the team surface
type MemberWithLoad struct {
	Member      *entities.Member
	CurrentLoad float64
	ActiveTasks int
}

// CreateMemberInput represents input for creating a member
type CreateMemberInput struct {
	Name           string
	Role           string
	Email          string
	WeeklyCapacity *float64
}

// UpdateMemberInput represents a partial member update
type UpdateMemberInput struct {
	Name           *string
	Role           *string
	Email          *string
	WeeklyCapacity *float64
}

// Service handles member business logic
type Service interface {
	ListWithLoad(ctx context.Context) ([]MemberWithLoad, error)
	Create(ctx context.Context, input CreateMemberInput) (*entities.Member, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateMemberInput) (*entities.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	memberRepo repositories.MemberRepository
	taskRepo   repositories.TaskRepository
}

// NewService creates a new member service
func NewService(memberRepo repositories.MemberRepository, taskRepo repositories.TaskRepository) Service {
	return &service{
		memberRepo: memberRepo,
		taskRepo:   taskRepo,
	}
}

// ListWithLoad retrieves all members with their current load and open task
// count, ordered by name
func (s *service) ListWithLoad(ctx context.Context) ([]MemberWithLoad, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	loads, err := s.taskRepo.LoadByAssignee(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate task load: %w", err)
	}

	rows := make([]MemberWithLoad, 0, len(members))
	for _, m := range members {
		load := loads[m.ID]
		rows = append(rows, MemberWithLoad{
			Member:      m,
			CurrentLoad: load.Hours,
			ActiveTasks: load.ActiveTasks,
		})
	}
	return rows, nil
}

// Create creates a new member
func (s *service) Create(ctx context.Context, input CreateMemberInput) (*entities.Member, error) {
	capacity := float64(entities.DefaultWeeklyCapacity)
	if input.WeeklyCapacity != nil {
		if *input.WeeklyCapacity < 0 {
			return nil, apperrors.ErrValidation("weeklyCapacity must be >= 0")
		}
		capacity = *input.WeeklyCapacity
	}

	m := &entities.Member{
		Name:           input.Name,
		Role:           input.Role,
		Email:          input.Email,
		WeeklyCapacity: capacity,
	}

	if err := s.memberRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return m, nil
}

// Update merges a partial update into an existing member
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateMemberInput) (*entities.Member, error) {
	m, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("member")
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if input.Name != nil {
		m.Name = *input.Name
	}
	if input.Role != nil {
		m.Role = *input.Role
	}
	if input.Email != nil {
		m.Email = *input.Email
	}
	if input.WeeklyCapacity != nil {
		if *input.WeeklyCapacity < 0 {
			return nil, apperrors.ErrValidation("weeklyCapacity must be >= 0")
		}
		m.WeeklyCapacity = *input.WeeklyCapacity
	}

	if err := s.memberRepo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return m, nil
}

// Delete removes a member and cascades to their tasks. The result is
// idempotent: deleting an unknown id succeeds.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if err := s.taskRepo.DeleteByAssignee(ctx, id); err != nil {
		return fmt.Errorf("failed to delete member tasks: %w", err)
	}
	return nil
}
