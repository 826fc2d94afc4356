package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
)

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	Search string // case-insensitive substring on title
	Title  string // exact title match
}

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// List retrieves meetings with filters, ordered by date descending
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, error)

	// Update persists changes to an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete removes a meeting
	Delete(ctx context.Context, id uuid.UUID) error

	// FindUpcoming retrieves meetings with date >= from, ascending, limited
	FindUpcoming(ctx context.Context, from time.Time, limit int) ([]*entities.Meeting, error)

	// Exists reports whether a meeting with the given id exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
