package meeting

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
	actionUsecase "github.com/johnquangdev/team-ops/internal/usecase/action"
)

// AttendeeRef is a resolved member reference
type AttendeeRef struct {
	ID   string
	Name string
}

// MeetingOutput is a meeting with its attendee references resolved
type MeetingOutput struct {
	Meeting   *entities.Meeting
	Attendees []AttendeeRef
}

// MeetingDetailOutput additionally inlines the actions and decisions that
// reference the meeting
type MeetingDetailOutput struct {
	MeetingOutput
	Actions   []actionUsecase.ActionOutput
	Decisions []*entities.Decision
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title     string
	Date      time.Time
	Agenda    string
	Notes     string
	Attendees []string
}

// UpdateMeetingInput represents a partial meeting update
type UpdateMeetingInput struct {
	Title     *string
	Date      *time.Time
	Agenda    *string
	Notes     *string
	Attendees *[]string
}

// Service handles meeting business logic
type Service interface {
	List(ctx context.Context, filters repositories.MeetingFilters) ([]MeetingOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*MeetingDetailOutput, error)
	Create(ctx context.Context, input CreateMeetingInput) (*MeetingOutput, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateMeetingInput) (*MeetingOutput, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	meetingRepo  repositories.MeetingRepository
	memberRepo   repositories.MemberRepository
	actionRepo   repositories.ActionRepository
	decisionRepo repositories.DecisionRepository
}

// NewService creates a new meeting service
func NewService(
	meetingRepo repositories.MeetingRepository,
	memberRepo repositories.MemberRepository,
	actionRepo repositories.ActionRepository,
	decisionRepo repositories.DecisionRepository,
) Service {
	return &service{
		meetingRepo:  meetingRepo,
		memberRepo:   memberRepo,
		actionRepo:   actionRepo,
		decisionRepo: decisionRepo,
	}
}

// List retrieves meetings with attendee names resolved
func (s *service) List(ctx context.Context, filters repositories.MeetingFilters) ([]MeetingOutput, error) {
	meetings, err := s.meetingRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	ids := make([]string, 0)
	for _, m := range meetings {
		ids = append(ids, m.Attendees...)
	}
	names, err := s.memberRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve attendees: %w", err)
	}

	out := make([]MeetingOutput, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, MeetingOutput{Meeting: m, Attendees: resolveAttendees(m.Attendees, names)})
	}
	return out, nil
}

// Get retrieves one meeting with attendees resolved and the actions and
// decisions that reference it inlined
func (s *service) Get(ctx context.Context, id uuid.UUID) (*MeetingDetailOutput, error) {
	m, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("meeting")
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	actions, err := s.actionRepo.FindByMeeting(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting actions: %w", err)
	}

	decisions, err := s.decisionRepo.FindByMeeting(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting decisions: %w", err)
	}

	// Attendee and action-owner names resolve in one pass.
	ids := append([]string{}, m.Attendees...)
	for _, a := range actions {
		ids = append(ids, a.Owners...)
	}
	names, err := s.memberRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve members: %w", err)
	}

	actionOut := make([]actionUsecase.ActionOutput, 0, len(actions))
	for _, a := range actions {
		owners := make([]actionUsecase.OwnerRef, 0, len(a.Owners))
		for _, ownerID := range a.Owners {
			owners = append(owners, actionUsecase.OwnerRef{ID: ownerID, Name: names[ownerID]})
		}
		actionOut = append(actionOut, actionUsecase.ActionOutput{Action: a, Owners: owners})
	}

	return &MeetingDetailOutput{
		MeetingOutput: MeetingOutput{Meeting: m, Attendees: resolveAttendees(m.Attendees, names)},
		Actions:       actionOut,
		Decisions:     decisions,
	}, nil
}

// Create creates a new meeting after checking every attendee reference
func (s *service) Create(ctx context.Context, input CreateMeetingInput) (*MeetingOutput, error) {
	names, err := s.validateAttendees(ctx, input.Attendees)
	if err != nil {
		return nil, err
	}

	m := &entities.Meeting{
		Title:     input.Title,
		Date:      input.Date,
		Agenda:    input.Agenda,
		Notes:     input.Notes,
		Attendees: input.Attendees,
	}

	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return &MeetingOutput{Meeting: m, Attendees: resolveAttendees(m.Attendees, names)}, nil
}

// Update merges a partial update into an existing meeting
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateMeetingInput) (*MeetingOutput, error) {
	m, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("meeting")
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	if input.Title != nil {
		m.Title = *input.Title
	}
	if input.Date != nil {
		m.Date = *input.Date
	}
	if input.Agenda != nil {
		m.Agenda = *input.Agenda
	}
	if input.Notes != nil {
		m.Notes = *input.Notes
	}
	if input.Attendees != nil {
		if _, err := s.validateAttendees(ctx, *input.Attendees); err != nil {
			return nil, err
		}
		m.Attendees = *input.Attendees
	}

	if err := s.meetingRepo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	names, err := s.memberRepo.NamesByIDs(ctx, m.Attendees)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve attendees: %w", err)
	}
	return &MeetingOutput{Meeting: m, Attendees: resolveAttendees(m.Attendees, names)}, nil
}

// Delete removes a meeting and cascades: actions referencing it are
// deleted, decisions referencing it keep the record but lose the reference.
// The two cascade steps commit independently; there is no surrounding
// transaction.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	if err := s.actionRepo.DeleteByMeeting(ctx, id); err != nil {
		return fmt.Errorf("failed to delete meeting actions: %w", err)
	}
	if err := s.decisionRepo.ClearMeeting(ctx, id); err != nil {
		return fmt.Errorf("failed to detach meeting decisions: %w", err)
	}
	return nil
}

// validateAttendees checks that every attendee id references an existing
// member and returns the resolved names
func (s *service) validateAttendees(ctx context.Context, ids []string) (map[string]string, error) {
	names, err := s.memberRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve attendees: %w", err)
	}
	for _, id := range ids {
		if _, ok := names[id]; !ok {
			return nil, apperrors.ErrBadReference("attendees", id)
		}
	}
	return names, nil
}

func resolveAttendees(ids []string, names map[string]string) []AttendeeRef {
	refs := make([]AttendeeRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, AttendeeRef{ID: id, Name: names[id]})
	}
	return refs
}
