package action

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/johnquangdev/team-ops/errors"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

type fakeActionRepo struct {
	repositories.ActionRepository
	actions map[uuid.UUID]*entities.Action
}

func newFakeActionRepo(actions ...*entities.Action) *fakeActionRepo {
	byID := make(map[uuid.UUID]*entities.Action)
	for _, a := range actions {
		byID[a.ID] = a
	}
	return &fakeActionRepo{actions: byID}
}

func (f *fakeActionRepo) Create(ctx context.Context, a *entities.Action) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.actions[a.ID] = a
	return nil
}

func (f *fakeActionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Action, error) {
	return f.actions[id], nil
}

func (f *fakeActionRepo) List(ctx context.Context, filters repositories.ActionFilters) ([]*entities.Action, error) {
	var out []*entities.Action
	for _, a := range f.actions {
		if filters.Status != nil && a.Status != *filters.Status {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (f *fakeActionRepo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	var swept int64
	for _, a := range f.actions {
		if a.IsOverdueAt(now) {
			a.Status = entities.ActionStatusOverdue
			swept++
		}
	}
	return swept, nil
}

type fakeMeetingRepo struct {
	repositories.MeetingRepository
	existing map[uuid.UUID]bool
}

func (f *fakeMeetingRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

type fakeMemberRepo struct {
	repositories.MemberRepository
	names map[string]string
}

func (f *fakeMemberRepo) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func newTestService(actionRepo *fakeActionRepo, meetingRepo *fakeMeetingRepo, memberRepo *fakeMemberRepo, now time.Time) *service {
	return &service{
		actionRepo:  actionRepo,
		meetingRepo: meetingRepo,
		memberRepo:  memberRepo,
		now:         func() time.Time { return now },
	}
}

func TestSweepOverdue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	stalePending := &entities.Action{ID: uuid.New(), Status: entities.ActionStatusPending, Deadline: &past}
	staleInProgress := &entities.Action{ID: uuid.New(), Status: entities.ActionStatusInProgress, Deadline: &past}
	completed := &entities.Action{ID: uuid.New(), Status: entities.ActionStatusCompleted, Deadline: &past}
	upcoming := &entities.Action{ID: uuid.New(), Status: entities.ActionStatusPending, Deadline: &future}
	noDeadline := &entities.Action{ID: uuid.New(), Status: entities.ActionStatusPending}

	repo := newFakeActionRepo(stalePending, staleInProgress, completed, upcoming, noDeadline)
	svc := newTestService(repo, &fakeMeetingRepo{}, &fakeMemberRepo{}, now)

	swept, err := svc.SweepOverdue(context.Background())
	if err != nil {
		t.Fatalf("SweepOverdue failed: %v", err)
	}
	if swept != 2 {
		t.Fatalf("expected 2 swept, got %d", swept)
	}
	if stalePending.Status != entities.ActionStatusOverdue || staleInProgress.Status != entities.ActionStatusOverdue {
		t.Fatal("stale actions not transitioned to overdue")
	}
	if completed.Status != entities.ActionStatusCompleted {
		t.Fatal("completed action must not be swept")
	}
	if upcoming.Status != entities.ActionStatusPending || noDeadline.Status != entities.ActionStatusPending {
		t.Fatal("non-stale actions must keep their status")
	}

	// Running again sweeps nothing: the transition is one-way
	swept, err = svc.SweepOverdue(context.Background())
	if err != nil {
		t.Fatalf("second sweep failed: %v", err)
	}
	if swept != 0 {
		t.Fatalf("expected idempotent second sweep, got %d", swept)
	}
}

func TestListSweepsFirst(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	owner := uuid.New().String()
	stale := &entities.Action{ID: uuid.New(), Title: "Send notes", Status: entities.ActionStatusPending, Deadline: &past, Owners: []string{owner}}
	repo := newFakeActionRepo(stale)
	svc := newTestService(repo, &fakeMeetingRepo{}, &fakeMemberRepo{names: map[string]string{owner: "Ana"}}, now)

	overdue := entities.ActionStatusOverdue
	out, err := svc.List(context.Background(), repositories.ActionFilters{Status: &overdue})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected the stale action to be visible as overdue, got %d results", len(out))
	}
	if out[0].Action.Status != entities.ActionStatusOverdue {
		t.Fatalf("expected overdue status, got %q", out[0].Action.Status)
	}
	if len(out[0].Owners) != 1 || out[0].Owners[0].Name != "Ana" {
		t.Fatalf("owner not resolved: %+v", out[0].Owners)
	}
}

func TestCreateChecksReferences(t *testing.T) {
	now := time.Now()
	meeting := uuid.New()
	owner := uuid.New().String()

	repo := newFakeActionRepo()
	meetings := &fakeMeetingRepo{existing: map[uuid.UUID]bool{meeting: true}}
	members := &fakeMemberRepo{names: map[string]string{owner: "Ana"}}
	svc := newTestService(repo, meetings, members, now)

	out, err := svc.Create(context.Background(), CreateActionInput{
		Title:     "Draft report",
		MeetingID: meeting,
		Owners:    []string{owner},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if out.Action.Status != entities.ActionStatusPending {
		t.Fatalf("expected default pending status, got %q", out.Action.Status)
	}

	// Unknown meeting
	_, err = svc.Create(context.Background(), CreateActionInput{
		Title:     "Draft report",
		MeetingID: uuid.New(),
		Owners:    []string{owner},
	})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_VALIDATION {
		t.Fatalf("expected validation error for unknown meeting, got %v", err)
	}

	// Unknown owner
	_, err = svc.Create(context.Background(), CreateActionInput{
		Title:     "Draft report",
		MeetingID: meeting,
		Owners:    []string{uuid.New().String()},
	})
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_VALIDATION {
		t.Fatalf("expected validation error for unknown owner, got %v", err)
	}

	// No owners at all
	_, err = svc.Create(context.Background(), CreateActionInput{
		Title:     "Draft report",
		MeetingID: meeting,
	})
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_VALIDATION {
		t.Fatalf("expected validation error for empty owners, got %v", err)
	}
}
