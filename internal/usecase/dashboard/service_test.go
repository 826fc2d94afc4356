package dashboard

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
	actionUsecase "github.com/johnquangdev/team-ops/internal/usecase/action"
	"github.com/johnquangdev/team-ops/internal/usecase/workload"
)

type fakeDecisionRepo struct {
	repositories.DecisionRepository
	decisions []*entities.Decision
}

func (f *fakeDecisionRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.decisions)), nil
}

func (f *fakeDecisionRepo) CountByOutcomes(ctx context.Context, outcomes []entities.DecisionOutcome) (int64, error) {
	var n int64
	for _, d := range f.decisions {
		for _, o := range outcomes {
			if d.Outcome == o {
				n++
				break
			}
		}
	}
	return n, nil
}

func (f *fakeDecisionRepo) FindRecent(ctx context.Context, limit int) ([]*entities.Decision, error) {
	out := append([]*entities.Decision{}, f.decisions...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeTaskRepo struct {
	repositories.TaskRepository
	tasks []*entities.Task
}

func (f *fakeTaskRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.tasks)), nil
}

func (f *fakeTaskRepo) CountByStatus(ctx context.Context, status entities.TaskStatus) (int64, error) {
	var n int64
	for _, tk := range f.tasks {
		if tk.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeTaskRepo) FindDueBetween(ctx context.Context, from, to time.Time, limit int) ([]*entities.Task, error) {
	var out []*entities.Task
	for _, tk := range f.tasks {
		if tk.Status == entities.TaskStatusDone || tk.DueDate == nil {
			continue
		}
		if tk.DueDate.Before(from) || tk.DueDate.After(to) {
			continue
		}
		out = append(out, tk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(*out[j].DueDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTaskRepo) LoadByAssignee(ctx context.Context) (map[uuid.UUID]repositories.AssigneeLoad, error) {
	loads := make(map[uuid.UUID]repositories.AssigneeLoad)
	for _, tk := range f.tasks {
		if tk.IsDone() {
			continue
		}
		load := loads[tk.AssigneeID]
		load.Hours += tk.EstimatedHours
		load.ActiveTasks++
		loads[tk.AssigneeID] = load
	}
	return loads, nil
}

type fakeActionRepo struct {
	repositories.ActionRepository
	actions []*entities.Action
}

func (f *fakeActionRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.actions)), nil
}

func (f *fakeActionRepo) CountByStatuses(ctx context.Context, statuses []entities.ActionStatus) (int64, error) {
	var n int64
	for _, a := range f.actions {
		for _, s := range statuses {
			if a.Status == s {
				n++
				break
			}
		}
	}
	return n, nil
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

func (f *fakeActionRepo) FindOverdue(ctx context.Context, limit int) ([]*entities.Action, error) {
	var out []*entities.Action
	for _, a := range f.actions {
		if a.Status == entities.ActionStatusOverdue {
			out = append(out, a)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeMeetingRepo struct {
	repositories.MeetingRepository
	meetings []*entities.Meeting
}

func (f *fakeMeetingRepo) FindUpcoming(ctx context.Context, from time.Time, limit int) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range f.meetings {
		if !m.Date.Before(from) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeMemberRepo struct {
	repositories.MemberRepository
	members []*entities.Member
}

func (f *fakeMemberRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.members)), nil
}

func (f *fakeMemberRepo) List(ctx context.Context) ([]*entities.Member, error) {
	return f.members, nil
}

func (f *fakeMemberRepo) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, m := range f.members {
		out[m.ID.String()] = m.Name
	}
	return out, nil
}

func TestCompose(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	soon := now.Add(48 * time.Hour)
	far := now.Add(30 * 24 * time.Hour)

	ana := &entities.Member{ID: uuid.New(), Name: "Ana", WeeklyCapacity: 40}

	meetingID := uuid.New()
	meetings := &fakeMeetingRepo{meetings: []*entities.Meeting{
		{ID: meetingID, Title: "Planning", Date: soon, Attendees: []string{ana.ID.String()}},
		{ID: uuid.New(), Title: "Old sync", Date: past},
	}}

	decisions := &fakeDecisionRepo{decisions: []*entities.Decision{
		{ID: uuid.New(), Outcome: entities.DecisionOutcomePending},
		{ID: uuid.New(), Outcome: entities.DecisionOutcomeRevisited},
		{ID: uuid.New(), Outcome: entities.DecisionOutcomeSuccessful},
	}}

	tasks := &fakeTaskRepo{tasks: []*entities.Task{
		{ID: uuid.New(), AssigneeID: ana.ID, Status: entities.TaskStatusTodo, EstimatedHours: 10, DueDate: &soon},
		{ID: uuid.New(), AssigneeID: ana.ID, Status: entities.TaskStatusInProgress, EstimatedHours: 8, DueDate: &far},
		{ID: uuid.New(), AssigneeID: ana.ID, Status: entities.TaskStatusDone, EstimatedHours: 6},
	}}

	actions := &fakeActionRepo{actions: []*entities.Action{
		{ID: uuid.New(), MeetingID: meetingID, Status: entities.ActionStatusPending, Deadline: &past, Owners: []string{ana.ID.String()}},
		{ID: uuid.New(), MeetingID: meetingID, Status: entities.ActionStatusPending, Deadline: &soon},
		{ID: uuid.New(), MeetingID: meetingID, Status: entities.ActionStatusCompleted},
	}}

	members := &fakeMemberRepo{members: []*entities.Member{ana}}

	actionService := actionUsecase.NewService(actions, meetings, members)
	workloadService := workload.NewService(members, tasks)
	svc := NewService(decisions, tasks, actions, meetings, members, actionService, workloadService)

	overview, err := svc.Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if overview.Decisions.Total != 3 || overview.Decisions.Pending != 1 || overview.Decisions.Active != 2 {
		t.Fatalf("decision counts wrong: %+v", overview.Decisions)
	}
	if overview.Tasks.Total != 3 || overview.Tasks.Todo != 1 || overview.Tasks.InProgress != 1 || overview.Tasks.Done != 1 {
		t.Fatalf("task counts wrong: %+v", overview.Tasks)
	}

	// The stale pending action was swept before counting
	if overview.Actions.Total != 3 || overview.Actions.Pending != 1 || overview.Actions.Overdue != 1 {
		t.Fatalf("action counts wrong: %+v", overview.Actions)
	}
	if overview.Team.TotalMembers != 1 {
		t.Fatalf("team counts wrong: %+v", overview.Team)
	}

	// Only the future meeting surfaces, attendees resolved
	if len(overview.UpcomingMeetings) != 1 || overview.UpcomingMeetings[0].Meeting.ID != meetingID {
		t.Fatalf("upcoming meetings wrong: %+v", overview.UpcomingMeetings)
	}
	if overview.UpcomingMeetings[0].Attendees[0].Name != "Ana" {
		t.Fatalf("attendee not resolved: %+v", overview.UpcomingMeetings[0].Attendees)
	}

	// Only the task due inside the 7-day window, done tasks excluded
	if len(overview.UpcomingDeadlineTasks) != 1 {
		t.Fatalf("expected 1 task due soon, got %d", len(overview.UpcomingDeadlineTasks))
	}

	// The swept action shows up as overdue with its owner resolved
	if len(overview.OverdueActions) != 1 {
		t.Fatalf("expected 1 overdue action, got %d", len(overview.OverdueActions))
	}
	if overview.OverdueActions[0].Owners[0].Name != "Ana" {
		t.Fatalf("overdue action owner not resolved: %+v", overview.OverdueActions[0].Owners)
	}

	if len(overview.RecentDecisions) != 3 {
		t.Fatalf("expected 3 recent decisions, got %d", len(overview.RecentDecisions))
	}

	// Workload reflects only non-done tasks: 18h of 40h capacity
	if len(overview.Workload) != 1 {
		t.Fatalf("expected 1 workload row, got %d", len(overview.Workload))
	}
	row := overview.Workload[0]
	if row.CurrentLoad != 18 || row.ActiveTasks != 2 || row.Utilization != 45 || row.Status != workload.StatusBalanced {
		t.Fatalf("workload row wrong: %+v", row)
	}
}
