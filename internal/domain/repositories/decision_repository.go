package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
)

// DecisionFilters represents filter options for listing decisions
type DecisionFilters struct {
	Search  string // case-insensitive substring on title, description, tags
	Project string // exact project match
	Team    string // membership in the team list
	Outcome *entities.DecisionOutcome
}

// DecisionRepository defines the interface for decision data access
type DecisionRepository interface {
	// Create creates a new decision
	Create(ctx context.Context, decision *entities.Decision) error

	// FindByID retrieves a decision by its ID with madeBy resolved
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Decision, error)

	// List retrieves decisions with filters, ordered by decision date then
	// creation time descending
	List(ctx context.Context, filters DecisionFilters) ([]*entities.Decision, error)

	// Update persists changes to an existing decision
	Update(ctx context.Context, decision *entities.Decision) error

	// Delete removes a decision
	Delete(ctx context.Context, id uuid.UUID) error

	// DistinctProjects returns the distinct non-empty project values
	DistinctProjects(ctx context.Context) ([]string, error)

	// FindByMeeting retrieves decisions referencing a meeting
	FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Decision, error)

	// ClearMeeting nulls the meeting reference on all decisions that
	// reference the given meeting
	ClearMeeting(ctx context.Context, meetingID uuid.UUID) error

	// FindRecent retrieves the most recently created decisions
	FindRecent(ctx context.Context, limit int) ([]*entities.Decision, error)

	// Count returns the total number of decisions
	Count(ctx context.Context) (int64, error)

	// CountByOutcomes returns the number of decisions in any of the given
	// outcomes
	CountByOutcomes(ctx context.Context, outcomes []entities.DecisionOutcome) (int64, error)
}
