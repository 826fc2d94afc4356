package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
)

// ActionFilters represents filter options for listing actions
type ActionFilters struct {
	Status *entities.ActionStatus
	// Owner is matched as a case-insensitive substring against the stored
	// owner list, not as an exact id.
	Owner string
}

// ActionRepository defines the interface for action data access
type ActionRepository interface {
	// Create creates a new action
	Create(ctx context.Context, action *entities.Action) error

	// FindByID retrieves an action by its ID with its meeting resolved
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Action, error)

	// List retrieves actions with filters, meeting resolved, ordered by
	// deadline ascending
	List(ctx context.Context, filters ActionFilters) ([]*entities.Action, error)

	// Update persists changes to an existing action
	Update(ctx context.Context, action *entities.Action) error

	// Delete removes an action
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByMeeting removes all actions referencing a meeting
	DeleteByMeeting(ctx context.Context, meetingID uuid.UUID) error

	// FindByMeeting retrieves actions referencing a meeting
	FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Action, error)

	// MarkOverdue bulk-transitions pending/in_progress actions whose
	// deadline is before now to overdue, returning the affected count
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)

	// FindOverdue retrieves overdue actions with meeting resolved, limited
	FindOverdue(ctx context.Context, limit int) ([]*entities.Action, error)

	// Count returns the total number of actions
	Count(ctx context.Context) (int64, error)

	// CountByStatuses returns the number of actions in any of the given
	// statuses
	CountByStatuses(ctx context.Context, statuses []entities.ActionStatus) (int64, error)
}
