package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

// actionRepository implements the ActionRepository interface
type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository creates a new action repository
func NewActionRepository(db *gorm.DB) repositories.ActionRepository {
	return &actionRepository{db: db}
}

// Create creates a new action
func (r *actionRepository) Create(ctx context.Context, action *entities.Action) error {
	return r.db.WithContext(ctx).Create(action).Error
}

// FindByID retrieves an action by its ID with its meeting resolved
func (r *actionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Action, error) {
	var action entities.Action
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Where("id = ?", id).
		First(&action).Error

	if err != nil {
		return nil, err
	}
	return &action, nil
}

// List retrieves actions with filters, ordered by deadline ascending
func (r *actionRepository) List(ctx context.Context, filters repositories.ActionFilters) ([]*entities.Action, error) {
	var actions []*entities.Action
	query := r.db.WithContext(ctx).Model(&entities.Action{}).Preload("Meeting")

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Owner != "" {
		// Substring match against the serialized owner list.
		query = query.Where("owners::text ILIKE ?", fmt.Sprintf("%%%s%%", filters.Owner))
	}

	err := query.Order("deadline ASC NULLS LAST").Find(&actions).Error
	return actions, err
}

// Update persists changes to an existing action
func (r *actionRepository) Update(ctx context.Context, action *entities.Action) error {
	return r.db.WithContext(ctx).Save(action).Error
}

// Delete removes an action
func (r *actionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Action{}, "id = ?", id).Error
}

// DeleteByMeeting removes all actions referencing a meeting
func (r *actionRepository) DeleteByMeeting(ctx context.Context, meetingID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Delete(&entities.Action{}).Error
}

// FindByMeeting retrieves actions referencing a meeting
func (r *actionRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Action, error) {
	var actions []*entities.Action
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("deadline ASC NULLS LAST").
		Find(&actions).Error
	return actions, err
}

// MarkOverdue bulk-transitions stale pending/in_progress actions to overdue
func (r *actionRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Action{}).
		Where("status IN ?", entities.SweepableStatuses).
		Where("deadline IS NOT NULL AND deadline < ?", now).
		Update("status", entities.ActionStatusOverdue)
	return res.RowsAffected, res.Error
}

// FindOverdue retrieves overdue actions with meeting resolved
func (r *actionRepository) FindOverdue(ctx context.Context, limit int) ([]*entities.Action, error) {
	var actions []*entities.Action
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Where("status = ?", entities.ActionStatusOverdue).
		Order("deadline ASC NULLS LAST").
		Limit(limit).
		Find(&actions).Error
	return actions, err
}

// Count returns the total number of actions
func (r *actionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Action{}).Count(&count).Error
	return count, err
}

// CountByStatuses returns the number of actions in any of the given statuses
func (r *actionRepository) CountByStatuses(ctx context.Context, statuses []entities.ActionStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Action{}).
		Where("status IN ?", statuses).
		Count(&count).Error
	return count, err
}
