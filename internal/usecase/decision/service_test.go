package decision

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/johnquangdev/team-ops/errors"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

type fakeDecisionRepo struct {
	repositories.DecisionRepository
	decisions map[uuid.UUID]*entities.Decision
}

func newFakeDecisionRepo(decisions ...*entities.Decision) *fakeDecisionRepo {
	byID := make(map[uuid.UUID]*entities.Decision)
	for _, d := range decisions {
		byID[d.ID] = d
	}
	return &fakeDecisionRepo{decisions: byID}
}

func (f *fakeDecisionRepo) Create(ctx context.Context, d *entities.Decision) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	f.decisions[d.ID] = d
	return nil
}

func (f *fakeDecisionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Decision, error) {
	d, ok := f.decisions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeDecisionRepo) Update(ctx context.Context, d *entities.Decision) error {
	f.decisions[d.ID] = d
	return nil
}

type fakeMemberRepo struct {
	repositories.MemberRepository
	existing map[uuid.UUID]bool
}

func (f *fakeMemberRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

type fakeMeetingRepo struct {
	repositories.MeetingRepository
	existing map[uuid.UUID]bool
}

func (f *fakeMeetingRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

func TestCreateDefaultsOutcomeAndDate(t *testing.T) {
	repo := newFakeDecisionRepo()
	svc := NewService(repo, &fakeMemberRepo{}, &fakeMeetingRepo{})

	d, err := svc.Create(context.Background(), CreateDecisionInput{Title: "Use Postgres"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if d.Outcome != entities.DecisionOutcomePending {
		t.Fatalf("expected pending outcome, got %q", d.Outcome)
	}
	if d.DecisionDate.IsZero() {
		t.Fatal("expected decision date to default to now")
	}
}

func TestCreateRejectsUnknownReferences(t *testing.T) {
	svc := NewService(newFakeDecisionRepo(), &fakeMemberRepo{}, &fakeMeetingRepo{})

	member := uuid.New()
	_, err := svc.Create(context.Background(), CreateDecisionInput{Title: "Use Postgres", MadeByID: &member})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_VALIDATION {
		t.Fatalf("expected validation error for unknown madeBy, got %v", err)
	}

	meeting := uuid.New()
	_, err = svc.Create(context.Background(), CreateDecisionInput{Title: "Use Postgres", MeetingID: &meeting})
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_VALIDATION {
		t.Fatalf("expected validation error for unknown meeting, got %v", err)
	}
}

func TestUpdateClearsReferenceOnExplicitNull(t *testing.T) {
	meeting := uuid.New()
	member := uuid.New()
	existing := &entities.Decision{
		ID:        uuid.New(),
		Title:     "Use Postgres",
		MeetingID: &meeting,
		MadeByID:  &member,
	}
	repo := newFakeDecisionRepo(existing)
	svc := NewService(repo, &fakeMemberRepo{}, &fakeMeetingRepo{})

	// Absent double pointer leaves the reference untouched
	title := "Use Postgres 16"
	d, err := svc.Update(context.Background(), existing.ID, UpdateDecisionInput{Title: &title})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if d.MeetingID == nil || *d.MeetingID != meeting {
		t.Fatal("meeting reference changed by unrelated update")
	}

	// Pointer to nil clears it
	var cleared *uuid.UUID
	d, err = svc.Update(context.Background(), existing.ID, UpdateDecisionInput{MeetingID: &cleared, MadeByID: &cleared})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if d.MeetingID != nil {
		t.Fatal("expected meeting reference cleared")
	}
	if d.MadeByID != nil {
		t.Fatal("expected madeBy reference cleared")
	}
}

func TestUpdateReplacingReferenceChecksIt(t *testing.T) {
	existing := &entities.Decision{ID: uuid.New(), Title: "Use Postgres"}
	repo := newFakeDecisionRepo(existing)

	known := uuid.New()
	svc := NewService(repo, &fakeMemberRepo{}, &fakeMeetingRepo{existing: map[uuid.UUID]bool{known: true}})

	ref := &known
	d, err := svc.Update(context.Background(), existing.ID, UpdateDecisionInput{MeetingID: &ref})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if d.MeetingID == nil || *d.MeetingID != known {
		t.Fatal("meeting reference not set")
	}

	unknown := uuid.New()
	bad := &unknown
	_, err = svc.Update(context.Background(), existing.ID, UpdateDecisionInput{MeetingID: &bad})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_VALIDATION {
		t.Fatalf("expected validation error for unknown meeting, got %v", err)
	}
}

func TestUpdateUnknownDecisionReturnsNotFound(t *testing.T) {
	svc := NewService(newFakeDecisionRepo(), &fakeMemberRepo{}, &fakeMeetingRepo{})

	title := "Anything"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateDecisionInput{Title: &title})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGetUnknownDecisionReturnsNotFound(t *testing.T) {
	svc := NewService(newFakeDecisionRepo(), &fakeMemberRepo{}, &fakeMeetingRepo{})

	_, err := svc.Get(context.Background(), uuid.New())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestAlternativesKeepSubmittedOrder(t *testing.T) {
	repo := newFakeDecisionRepo()
	svc := NewService(repo, &fakeMemberRepo{}, &fakeMeetingRepo{})

	alternatives := []entities.Alternative{
		{Title: "MySQL", Description: "team knows it"},
		{Title: "SQLite", Description: "no ops"},
		{Title: "Mongo", Description: "flexible schema"},
	}
	d, err := svc.Create(context.Background(), CreateDecisionInput{Title: "Pick a store", Alternatives: alternatives})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(d.Alternatives) != 3 {
		t.Fatalf("expected 3 alternatives, got %d", len(d.Alternatives))
	}
	for i, alt := range alternatives {
		if d.Alternatives[i].Title != alt.Title {
			t.Fatalf("alternative %d out of order: got %q want %q", i, d.Alternatives[i].Title, alt.Title)
		}
	}
}
