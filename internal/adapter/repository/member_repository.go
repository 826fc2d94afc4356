package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

// memberRepository implements the MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) repositories.MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member
func (r *memberRepository) Create(ctx context.Context, member *entities.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// FindByID retrieves a member by its ID
func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	var member entities.Member
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&member).Error

	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List retrieves all members ordered by name ascending
func (r *memberRepository) List(ctx context.Context) ([]*entities.Member, error) {
	var members []*entities.Member
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&members).Error
	return members, err
}

// Update persists changes to an existing member
func (r *memberRepository) Update(ctx context.Context, member *entities.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete removes a member
func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Member{}, "id = ?", id).Error
}

// Count returns the total number of members
func (r *memberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Member{}).Count(&count).Error
	return count, err
}

// NamesByIDs resolves member ids to display names
func (r *memberRepository) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []struct {
		ID   uuid.UUID
		Name string
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Member{}).
		Select("id, name").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		names[row.ID.String()] = row.Name
	}
	return names, nil
}

// Exists reports whether a member with the given id exists
func (r *memberRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Member{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
