package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
	actionUsecase "github.com/johnquangdev/team-ops/internal/usecase/action"
	meetingUsecase "github.com/johnquangdev/team-ops/internal/usecase/meeting"
	"github.com/johnquangdev/team-ops/internal/usecase/workload"
)

const (
	upcomingMeetingsLimit = 5
	recentDecisionsLimit  = 5
	dueSoonTasksLimit     = 10
	overdueActionsLimit   = 10
	dueSoonWindow         = 7 * 24 * time.Hour
)

// DecisionCounts summarizes decision records
type DecisionCounts struct {
	Total   int64
	Pending int64
	Active  int64
}

// TaskCounts summarizes task records by status
type TaskCounts struct {
	Total      int64
	Todo       int64
	InProgress int64
	Done       int64
}

// ActionCounts summarizes action records
type ActionCounts struct {
	Total   int64
	Pending int64 // pending + in_progress
	Overdue int64
}

// TeamCounts summarizes the member collection
type TeamCounts struct {
	TotalMembers int64
}

// Overview is the composed dashboard payload
type Overview struct {
	Decisions             DecisionCounts
	Tasks                 TaskCounts
	Actions               ActionCounts
	Team                  TeamCounts
	UpcomingMeetings      []meetingUsecase.MeetingOutput
	RecentDecisions       []*entities.Decision
	UpcomingDeadlineTasks []*entities.Task
	OverdueActions        []actionUsecase.ActionOutput
	Workload              []workload.MemberWorkload
}

// Service composes the dashboard payload
type Service interface {
	// Compose sweeps stale actions to overdue, then assembles counts,
	// recent/upcoming slices and the workload overview as of request time
	Compose(ctx context.Context) (*Overview, error)
}

type service struct {
	decisionRepo    repositories.DecisionRepository
	taskRepo        repositories.TaskRepository
	actionRepo      repositories.ActionRepository
	meetingRepo     repositories.MeetingRepository
	memberRepo      repositories.MemberRepository
	actionService   actionUsecase.Service
	workloadService workload.Service
	now             func() time.Time
}

// NewService creates a new dashboard service
func NewService(
	decisionRepo repositories.DecisionRepository,
	taskRepo repositories.TaskRepository,
	actionRepo repositories.ActionRepository,
	meetingRepo repositories.MeetingRepository,
	memberRepo repositories.MemberRepository,
	actionService actionUsecase.Service,
	workloadService workload.Service,
) Service {
	return &service{
		decisionRepo:    decisionRepo,
		taskRepo:        taskRepo,
		actionRepo:      actionRepo,
		meetingRepo:     meetingRepo,
		memberRepo:      memberRepo,
		actionService:   actionService,
		workloadService: workloadService,
		now:             time.Now,
	}
}

// Compose assembles the dashboard payload.
// The overdue sweep runs first so action-derived counts and slices observe
// the swept state; the remaining sub-queries fan out concurrently with no
// shared transaction, so staleness between branches is tolerated.
func (s *service) Compose(ctx context.Context) (*Overview, error) {
	if _, err := s.actionService.SweepOverdue(ctx); err != nil {
		return nil, err
	}

	now := s.now()
	overview := &Overview{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		overview.Decisions.Total, err = s.decisionRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Decisions.Pending, err = s.decisionRepo.CountByOutcomes(gctx, []entities.DecisionOutcome{entities.DecisionOutcomePending})
		return err
	})
	g.Go(func() (err error) {
		overview.Decisions.Active, err = s.decisionRepo.CountByOutcomes(gctx, entities.ActiveOutcomes)
		return err
	})
	g.Go(func() (err error) {
		overview.Tasks.Total, err = s.taskRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Tasks.Todo, err = s.taskRepo.CountByStatus(gctx, entities.TaskStatusTodo)
		return err
	})
	g.Go(func() (err error) {
		overview.Tasks.InProgress, err = s.taskRepo.CountByStatus(gctx, entities.TaskStatusInProgress)
		return err
	})
	g.Go(func() (err error) {
		overview.Tasks.Done, err = s.taskRepo.CountByStatus(gctx, entities.TaskStatusDone)
		return err
	})
	g.Go(func() (err error) {
		overview.Actions.Total, err = s.actionRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Actions.Pending, err = s.actionRepo.CountByStatuses(gctx, entities.SweepableStatuses)
		return err
	})
	g.Go(func() (err error) {
		overview.Actions.Overdue, err = s.actionRepo.CountByStatuses(gctx, []entities.ActionStatus{entities.ActionStatusOverdue})
		return err
	})
	g.Go(func() (err error) {
		overview.Team.TotalMembers, err = s.memberRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		meetings, err := s.meetingRepo.FindUpcoming(gctx, now, upcomingMeetingsLimit)
		if err != nil {
			return err
		}
		overview.UpcomingMeetings, err = s.resolveAttendees(gctx, meetings)
		return err
	})
	g.Go(func() (err error) {
		overview.RecentDecisions, err = s.decisionRepo.FindRecent(gctx, recentDecisionsLimit)
		return err
	})
	g.Go(func() (err error) {
		overview.UpcomingDeadlineTasks, err = s.taskRepo.FindDueBetween(gctx, now, now.Add(dueSoonWindow), dueSoonTasksLimit)
		return err
	})
	g.Go(func() error {
		actions, err := s.actionRepo.FindOverdue(gctx, overdueActionsLimit)
		if err != nil {
			return err
		}
		overview.OverdueActions, err = s.resolveOwners(gctx, actions)
		return err
	})
	g.Go(func() (err error) {
		overview.Workload, err = s.workloadService.Overview(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compose dashboard: %w", err)
	}
	return overview, nil
}

func (s *service) resolveAttendees(ctx context.Context, meetings []*entities.Meeting) ([]meetingUsecase.MeetingOutput, error) {
	ids := make([]string, 0)
	for _, m := range meetings {
		ids = append(ids, m.Attendees...)
	}
	names, err := s.memberRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]meetingUsecase.MeetingOutput, 0, len(meetings))
	for _, m := range meetings {
		attendees := make([]meetingUsecase.AttendeeRef, 0, len(m.Attendees))
		for _, id := range m.Attendees {
			attendees = append(attendees, meetingUsecase.AttendeeRef{ID: id, Name: names[id]})
		}
		out = append(out, meetingUsecase.MeetingOutput{Meeting: m, Attendees: attendees})
	}
	return out, nil
}

func (s *service) resolveOwners(ctx context.Context, actions []*entities.Action) ([]actionUsecase.ActionOutput, error) {
	ids := make([]string, 0)
	for _, a := range actions {
		ids = append(ids, a.Owners...)
	}
	names, err := s.memberRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]actionUsecase.ActionOutput, 0, len(actions))
	for _, a := range actions {
		owners := make([]actionUsecase.OwnerRef, 0, len(a.Owners))
		for _, id := range a.Owners {
			owners = append(owners, actionUsecase.OwnerRef{ID: id, Name: names[id]})
		}
		out = append(out, actionUsecase.ActionOutput{Action: a, Owners: owners})
	}
	return out, nil
}
