package decision

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

// CreateDecisionInput represents input for creating a decision
type CreateDecisionInput struct {
	Title        string
	Description  string
	Context      string
	Constraints  string
	Alternatives []entities.Alternative
	Outcome      entities.DecisionOutcome
	Tags         []string
	Project      string
	Team         []string
	MadeByID     *uuid.UUID
	DecisionDate *time.Time
	MeetingID    *uuid.UUID
}

// UpdateDecisionInput represents a partial decision update.
// MeetingID uses a double pointer so the caller can distinguish "leave
// unchanged" (nil) from "clear the reference" (pointer to nil).
type UpdateDecisionInput struct {
	Title        *string
	Description  *string
	Context      *string
	Constraints  *string
	Alternatives *[]entities.Alternative
	Outcome      *entities.DecisionOutcome
	Tags         *[]string
	Project      *string
	Team         *[]string
	MadeByID     **uuid.UUID
	DecisionDate *time.Time
	MeetingID    **uuid.UUID
}

// Service handles decision business logic
type Service interface {
	List(ctx context.Context, filters repositories.DecisionFilters) ([]*entities.Decision, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Decision, error)
	Create(ctx context.Context, input CreateDecisionInput) (*entities.Decision, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateDecisionInput) (*entities.Decision, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Projects(ctx context.Context) ([]string, error)
}

type service struct {
	decisionRepo repositories.DecisionRepository
	memberRepo   repositories.MemberRepository
	meetingRepo  repositories.MeetingRepository
}

// NewService creates a new decision service
func NewService(
	decisionRepo repositories.DecisionRepository,
	memberRepo repositories.MemberRepository,
	meetingRepo repositories.MeetingRepository,
) Service {
	return &service{
		decisionRepo: decisionRepo,
		memberRepo:   memberRepo,
		meetingRepo:  meetingRepo,
	}
}

// List retrieves decisions with filters
func (s *service) List(ctx context.Context, filters repositories.DecisionFilters) ([]*entities.Decision, error) {
	decisions, err := s.decisionRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	return decisions, nil
}

// Get retrieves one decision by id
func (s *service) Get(ctx context.Context, id uuid.UUID) (*entities.Decision, error) {
	d, err := s.decisionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("decision")
		}
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}
	return d, nil
}

// Create creates a new decision after checking its references
func (s *service) Create(ctx context.Context, input CreateDecisionInput) (*entities.Decision, error) {
	if err := s.checkReferences(ctx, input.MadeByID, input.MeetingID); err != nil {
		return nil, err
	}

	outcome := input.Outcome
	if outcome == "" {
		outcome = entities.DecisionOutcomePending
	}
	decisionDate := time.Now()
	if input.DecisionDate != nil {
		decisionDate = *input.DecisionDate
	}

	d := &entities.Decision{
		Title:        input.Title,
		Description:  input.Description,
		Context:      input.Context,
		Constraints:  input.Constraints,
		Alternatives: input.Alternatives,
		Outcome:      outcome,
		Tags:         input.Tags,
		Project:      input.Project,
		Team:         input.Team,
		MadeByID:     input.MadeByID,
		DecisionDate: decisionDate,
		MeetingID:    input.MeetingID,
	}

	if err := s.decisionRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create decision: %w", err)
	}

	created, err := s.decisionRepo.FindByID(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload decision: %w", err)
	}
	return created, nil
}

// Update merges a partial update into an existing decision
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateDecisionInput) (*entities.Decision, error) {
	d, err := s.decisionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("decision")
		}
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}

	if input.Title != nil {
		d.Title = *input.Title
	}
	if input.Description != nil {
		d.Description = *input.Description
	}
	if input.Context != nil {
		d.Context = *input.Context
	}
	if input.Constraints != nil {
		d.Constraints = *input.Constraints
	}
	if input.Alternatives != nil {
		d.Alternatives = *input.Alternatives
	}
	if input.Outcome != nil {
		d.Outcome = *input.Outcome
	}
	if input.Tags != nil {
		d.Tags = *input.Tags
	}
	if input.Project != nil {
		d.Project = *input.Project
	}
	if input.Team != nil {
		d.Team = *input.Team
	}
	if input.DecisionDate != nil {
		d.DecisionDate = *input.DecisionDate
	}
	if input.MadeByID != nil {
		if err := s.checkReferences(ctx, *input.MadeByID, nil); err != nil {
			return nil, err
		}
		d.MadeByID = *input.MadeByID
		d.MadeBy = nil
	}
	if input.MeetingID != nil {
		if err := s.checkReferences(ctx, nil, *input.MeetingID); err != nil {
			return nil, err
		}
		d.MeetingID = *input.MeetingID
	}

	if err := s.decisionRepo.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to update decision: %w", err)
	}

	updated, err := s.decisionRepo.FindByID(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload decision: %w", err)
	}
	return updated, nil
}

// Delete removes a decision. Idempotent: deleting an unknown id succeeds.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.decisionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete decision: %w", err)
	}
	return nil
}

// Projects returns the distinct non-empty project values across decisions
func (s *service) Projects(ctx context.Context) ([]string, error) {
	projects, err := s.decisionRepo.DistinctProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *service) checkReferences(ctx context.Context, madeByID, meetingID *uuid.UUID) error {
	if madeByID != nil {
		ok, err := s.memberRepo.Exists(ctx, *madeByID)
		if err != nil {
			return fmt.Errorf("failed to check madeBy: %w", err)
		}
		if !ok {
			return apperrors.ErrBadReference("madeBy", madeByID.String())
		}
	}
	if meetingID != nil {
		ok, err := s.meetingRepo.Exists(ctx, *meetingID)
		if err != nil {
			return fmt.Errorf("failed to check meeting: %w", err)
		}
		if !ok {
			return apperrors.ErrBadReference("meetingId", meetingID.String())
		}
	}
	return nil
}
