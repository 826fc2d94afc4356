package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/johnquangdev/team-ops/errors"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

type fakeMeetingRepo struct {
	repositories.MeetingRepository
	meetings map[uuid.UUID]*entities.Meeting
}

func newFakeMeetingRepo(meetings ...*entities.Meeting) *fakeMeetingRepo {
	byID := make(map[uuid.UUID]*entities.Meeting)
	for _, m := range meetings {
		byID[m.ID] = m
	}
	return &fakeMeetingRepo{meetings: byID}
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.meetings[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeMeetingRepo) Update(ctx context.Context, m *entities.Meeting) error {
	f.meetings[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.meetings, id)
	return nil
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

func (f *fakeActionRepo) DeleteByMeeting(ctx context.Context, meetingID uuid.UUID) error {
	for id, a := range f.actions {
		if a.MeetingID == meetingID {
			delete(f.actions, id)
		}
	}
	return nil
}

func (f *fakeActionRepo) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Action, error) {
	var out []*entities.Action
	for _, a := range f.actions {
		if a.MeetingID == meetingID {
			out = append(out, a)
		}
	}
	return out, nil
}

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

func (f *fakeDecisionRepo) ClearMeeting(ctx context.Context, meetingID uuid.UUID) error {
	for _, d := range f.decisions {
		if d.MeetingID != nil && *d.MeetingID == meetingID {
			d.MeetingID = nil
		}
	}
	return nil
}

func (f *fakeDecisionRepo) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Decision, error) {
	var out []*entities.Decision
	for _, d := range f.decisions {
		if d.MeetingID != nil && *d.MeetingID == meetingID {
			out = append(out, d)
		}
	}
	return out, nil
}

func TestDeleteCascades(t *testing.T) {
	meeting := &entities.Meeting{ID: uuid.New(), Title: "Sprint planning", Date: time.Now()}
	other := &entities.Meeting{ID: uuid.New(), Title: "Retro", Date: time.Now()}

	actionRepo := newFakeActionRepo(
		&entities.Action{ID: uuid.New(), MeetingID: meeting.ID},
		&entities.Action{ID: uuid.New(), MeetingID: meeting.ID},
		&entities.Action{ID: uuid.New(), MeetingID: other.ID},
	)
	kept := &entities.Decision{ID: uuid.New(), Title: "Adopt trunk-based dev", MeetingID: &meeting.ID}
	unrelated := &entities.Decision{ID: uuid.New(), Title: "Hire a designer", MeetingID: &other.ID}
	decisionRepo := newFakeDecisionRepo(kept, unrelated)

	svc := NewService(newFakeMeetingRepo(meeting, other), &fakeMemberRepo{}, actionRepo, decisionRepo)

	if err := svc.Delete(context.Background(), meeting.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Actions referencing the meeting are gone, others survive
	if len(actionRepo.actions) != 1 {
		t.Fatalf("expected 1 surviving action, got %d", len(actionRepo.actions))
	}
	for _, a := range actionRepo.actions {
		if a.MeetingID != other.ID {
			t.Fatal("surviving action references deleted meeting")
		}
	}

	// Decisions survive but lose the reference
	if _, ok := decisionRepo.decisions[kept.ID]; !ok {
		t.Fatal("decision was deleted instead of detached")
	}
	if kept.MeetingID != nil {
		t.Fatal("decision still references deleted meeting")
	}
	if unrelated.MeetingID == nil || *unrelated.MeetingID != other.ID {
		t.Fatal("unrelated decision lost its meeting reference")
	}
}

func TestCreateRejectsUnknownAttendee(t *testing.T) {
	known := uuid.New().String()
	members := &fakeMemberRepo{names: map[string]string{known: "Ana"}}
	svc := NewService(newFakeMeetingRepo(), members, newFakeActionRepo(), newFakeDecisionRepo())

	_, err := svc.Create(context.Background(), CreateMeetingInput{
		Title:     "Kickoff",
		Date:      time.Now(),
		Attendees: []string{known, uuid.New().String()},
	})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_VALIDATION {
		t.Fatalf("expected validation error for unknown attendee, got %v", err)
	}
}

func TestCreateResolvesAttendeeNames(t *testing.T) {
	ana := uuid.New().String()
	bo := uuid.New().String()
	members := &fakeMemberRepo{names: map[string]string{ana: "Ana", bo: "Bo"}}
	svc := NewService(newFakeMeetingRepo(), members, newFakeActionRepo(), newFakeDecisionRepo())

	out, err := svc.Create(context.Background(), CreateMeetingInput{
		Title:     "Kickoff",
		Date:      time.Now(),
		Attendees: []string{bo, ana},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(out.Attendees) != 2 {
		t.Fatalf("expected 2 attendees, got %d", len(out.Attendees))
	}
	// Order of the stored list is preserved
	if out.Attendees[0].Name != "Bo" || out.Attendees[1].Name != "Ana" {
		t.Fatalf("attendees resolved out of order: %+v", out.Attendees)
	}
}

func TestGetUnknownMeetingReturnsNotFound(t *testing.T) {
	svc := NewService(newFakeMeetingRepo(), &fakeMemberRepo{}, newFakeActionRepo(), newFakeDecisionRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGetInlinesActionsAndDecisions(t *testing.T) {
	owner := uuid.New().String()
	meeting := &entities.Meeting{ID: uuid.New(), Title: "Planning", Date: time.Now(), Attendees: []string{owner}}
	action := &entities.Action{ID: uuid.New(), Title: "Write proposal", MeetingID: meeting.ID, Owners: []string{owner}}
	decision := &entities.Decision{ID: uuid.New(), Title: "Ship weekly", MeetingID: &meeting.ID}

	members := &fakeMemberRepo{names: map[string]string{owner: "Ana"}}
	svc := NewService(newFakeMeetingRepo(meeting), members, newFakeActionRepo(action), newFakeDecisionRepo(decision))

	detail, err := svc.Get(context.Background(), meeting.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(detail.Actions) != 1 || detail.Actions[0].Action.ID != action.ID {
		t.Fatalf("expected the meeting's action inlined, got %+v", detail.Actions)
	}
	if detail.Actions[0].Owners[0].Name != "Ana" {
		t.Fatalf("action owner not resolved: %+v", detail.Actions[0].Owners)
	}
	if len(detail.Decisions) != 1 || detail.Decisions[0].ID != decision.ID {
		t.Fatalf("expected the meeting's decision inlined, got %+v", detail.Decisions)
	}
}
