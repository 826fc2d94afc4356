package action

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

// OwnerRef is a resolved member reference
type OwnerRef struct {
	ID   string
	Name string
}

// ActionOutput is an action with its owner references resolved
type ActionOutput struct {
	Action *entities.Action
	Owners []OwnerRef
}

// CreateActionInput represents input for creating an action
type CreateActionInput struct {
	Title     string
	MeetingID uuid.UUID
	Owners    []string
	Deadline  *time.Time
	Status    entities.ActionStatus
}

// UpdateActionInput represents a partial action update
type UpdateActionInput struct {
	Title     *string
	MeetingID *uuid.UUID
	Owners    *[]string
	Deadline  *time.Time
	Status    *entities.ActionStatus
}

// Service handles action business logic, including the overdue sweep
type Service interface {
	// List sweeps stale actions to overdue, then retrieves actions with
	// filters in the freshly swept state
	List(ctx context.Context, filters repositories.ActionFilters) ([]ActionOutput, error)
	Create(ctx context.Context, input CreateActionInput) (*ActionOutput, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateActionInput) (*ActionOutput, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SweepOverdue bulk-transitions pending/in_progress actions whose
	// deadline has passed to overdue. The transition is one-way; nothing
	// moves an action out of overdue except an explicit update.
	SweepOverdue(ctx context.Context) (int64, error)
}

type service struct {
	actionRepo  repositories.ActionRepository
	meetingRepo repositories.MeetingRepository
	memberRepo  repositories.MemberRepository
	now         func() time.Time
}

// NewService creates a new action service
func NewService(
	actionRepo repositories.ActionRepository,
	meetingRepo repositories.MeetingRepository,
	memberRepo repositories.MemberRepository,
) Service {
	return &service{
		actionRepo:  actionRepo,
		meetingRepo: meetingRepo,
		memberRepo:  memberRepo,
		now:         time.Now,
	}
}

// List sweeps then retrieves actions with filters
func (s *service) List(ctx context.Context, filters repositories.ActionFilters) ([]ActionOutput, error) {
	if _, err := s.SweepOverdue(ctx); err != nil {
		return nil, err
	}

	actions, err := s.actionRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	ids := make([]string, 0)
	for _, a := range actions {
		ids = append(ids, a.Owners...)
	}
	names, err := s.memberRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owners: %w", err)
	}

	out := make([]ActionOutput, 0, len(actions))
	for _, a := range actions {
		out = append(out, ActionOutput{Action: a, Owners: resolveOwners(a.Owners, names)})
	}
	return out, nil
}

// Create creates a new action after checking its references
func (s *service) Create(ctx context.Context, input CreateActionInput) (*ActionOutput, error) {
	if err := s.checkMeeting(ctx, input.MeetingID); err != nil {
		return nil, err
	}
	names, err := s.checkOwners(ctx, input.Owners)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entities.ActionStatusPending
	}

	a := &entities.Action{
		Title:     input.Title,
		MeetingID: input.MeetingID,
		Owners:    input.Owners,
		Deadline:  input.Deadline,
		Status:    status,
	}

	if err := s.actionRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create action: %w", err)
	}

	created, err := s.actionRepo.FindByID(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload action: %w", err)
	}
	return &ActionOutput{Action: created, Owners: resolveOwners(created.Owners, names)}, nil
}

// Update merges a partial update into an existing action
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateActionInput) (*ActionOutput, error) {
	a, err := s.actionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("action")
		}
		return nil, fmt.Errorf("failed to get action: %w", err)
	}

	if input.Title != nil {
		a.Title = *input.Title
	}
	if input.MeetingID != nil {
		if err := s.checkMeeting(ctx, *input.MeetingID); err != nil {
			return nil, err
		}
		a.MeetingID = *input.MeetingID
		a.Meeting = nil
	}
	if input.Owners != nil {
		if _, err := s.checkOwners(ctx, *input.Owners); err != nil {
			return nil, err
		}
		a.Owners = *input.Owners
	}
	if input.Deadline != nil {
		a.Deadline = input.Deadline
	}
	if input.Status != nil {
		a.Status = *input.Status
	}

	if err := s.actionRepo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update action: %w", err)
	}

	updated, err := s.actionRepo.FindByID(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload action: %w", err)
	}
	names, err := s.memberRepo.NamesByIDs(ctx, updated.Owners)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owners: %w", err)
	}
	return &ActionOutput{Action: updated, Owners: resolveOwners(updated.Owners, names)}, nil
}

// Delete removes an action. Idempotent: deleting an unknown id succeeds.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.actionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete action: %w", err)
	}
	return nil
}

// SweepOverdue bulk-transitions stale actions to overdue
func (s *service) SweepOverdue(ctx context.Context) (int64, error) {
	swept, err := s.actionRepo.MarkOverdue(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep overdue actions: %w", err)
	}
	return swept, nil
}

func (s *service) checkMeeting(ctx context.Context, id uuid.UUID) error {
	ok, err := s.meetingRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check meeting: %w", err)
	}
	if !ok {
		return apperrors.ErrBadReference("meetingId", id.String())
	}
	return nil
}

func (s *service) checkOwners(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return nil, apperrors.ErrValidation("at least one owner is required")
	}
	names, err := s.memberRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owners: %w", err)
	}
	for _, id := range ids {
		if _, ok := names[id]; !ok {
			return nil, apperrors.ErrBadReference("owner", id)
		}
	}
	return names, nil
}

func resolveOwners(ids []string, names map[string]string) []OwnerRef {
	refs := make([]OwnerRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, OwnerRef{ID: id, Name: names[id]})
	}
	return refs
}
