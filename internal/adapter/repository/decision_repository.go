package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

// decisionRepository implements the DecisionRepository interface
type decisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new decision repository
func NewDecisionRepository(db *gorm.DB) repositories.DecisionRepository {
	return &decisionRepository{db: db}
}

// Create creates a new decision
func (r *decisionRepository) Create(ctx context.Context, decision *entities.Decision) error {
	return r.db.WithContext(ctx).Create(decision).Error
}

// FindByID retrieves a decision by its ID with madeBy resolved
func (r *decisionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Decision, error) {
	var decision entities.Decision
	err := r.db.WithContext(ctx).
		Preload("MadeBy").
		Where("id = ?", id).
		First(&decision).Error

	if err != nil {
		return nil, err
	}
	return &decision, nil
}

// List retrieves decisions with filters, ordered by decision date then
// creation time descending
func (r *decisionRepository) List(ctx context.Context, filters repositories.DecisionFilters) ([]*entities.Decision, error) {
	var decisions []*entities.Decision
	query := r.db.WithContext(ctx).Model(&entities.Decision{}).Preload("MadeBy")

	if filters.Project != "" {
		query = query.Where("project = ?", filters.Project)
	}
	if filters.Team != "" {
		member, err := json.Marshal([]string{filters.Team})
		if err != nil {
			return nil, err
		}
		query = query.Where("team @> ?", string(member))
	}
	if filters.Outcome != nil {
		query = query.Where("outcome = ?", *filters.Outcome)
	}
	if filters.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("title ILIKE ? OR description ILIKE ? OR tags::text ILIKE ?", pattern, pattern, pattern)
	}

	err := query.Order("decision_date DESC, created_at DESC").Find(&decisions).Error
	return decisions, err
}

// Update persists changes to an existing decision
func (r *decisionRepository) Update(ctx context.Context, decision *entities.Decision) error {
	return r.db.WithContext(ctx).Save(decision).Error
}

// Delete removes a decision
func (r *decisionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Decision{}, "id = ?", id).Error
}

// DistinctProjects returns the distinct non-empty project values
func (r *decisionRepository) DistinctProjects(ctx context.Context) ([]string, error) {
	var projects []string
	err := r.db.WithContext(ctx).
		Model(&entities.Decision{}).
		Distinct("project").
		Where("project IS NOT NULL AND project <> ''").
		Order("project ASC").
		Pluck("project", &projects).Error
	return projects, err
}

// FindByMeeting retrieves decisions referencing a meeting
func (r *decisionRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Decision, error) {
	var decisions []*entities.Decision
	err := r.db.WithContext(ctx).
		Preload("MadeBy").
		Where("meeting_id = ?", meetingID).
		Order("decision_date DESC, created_at DESC").
		Find(&decisions).Error
	return decisions, err
}

// ClearMeeting nulls the meeting reference on all decisions that reference
// the given meeting
func (r *decisionRepository) ClearMeeting(ctx context.Context, meetingID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.Decision{}).
		Where("meeting_id = ?", meetingID).
		Update("meeting_id", nil).
		Error
}

// FindRecent retrieves the most recently created decisions
func (r *decisionRepository) FindRecent(ctx context.Context, limit int) ([]*entities.Decision, error) {
	var decisions []*entities.Decision
	err := r.db.WithContext(ctx).
		Preload("MadeBy").
		Order("created_at DESC").
		Limit(limit).
		Find(&decisions).Error
	return decisions, err
}

// Count returns the total number of decisions
func (r *decisionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Decision{}).Count(&count).Error
	return count, err
}

// CountByOutcomes returns the number of decisions in any of the given outcomes
func (r *decisionRepository) CountByOutcomes(ctx context.Context, outcomes []entities.DecisionOutcome) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Decision{}).
		Where("outcome IN ?", outcomes).
		Count(&count).Error
	return count, err
}
