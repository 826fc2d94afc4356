package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
)

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	// Create creates a new member
	Create(ctx context.Context, member *entities.Member) error

	// FindByID retrieves a member by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Member, error)

	// List retrieves all members ordered by name ascending
	List(ctx context.Context) ([]*entities.Member, error)

	// Update persists changes to an existing member
	Update(ctx context.Context, member *entities.Member) error

	// Delete removes a member
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of members
	Count(ctx context.Context) (int64, error)

	// NamesByIDs resolves member ids to display names. Unknown ids are
	// simply absent from the result.
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)

	// Exists reports whether a member with the given id exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
