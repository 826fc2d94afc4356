package dashboard

import (
	"github.com/johnquangdev/team-ops/internal/adapter/dto/action"
	"github.com/johnquangdev/team-ops/internal/adapter/dto/decision"
	"github.com/johnquangdev/team-ops/internal/adapter/dto/meeting"
	"github.com/johnquangdev/team-ops/internal/adapter/dto/task"
)

// DecisionCountsResponse summarizes decision records
type DecisionCountsResponse struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
	Active  int64 `json:"active"`
}

// TaskCountsResponse summarizes task records by status
type TaskCountsResponse struct {
	Total      int64 `json:"total"`
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"inProgress"`
	Done       int64 `json:"done"`
}

// ActionCountsResponse summarizes action records
type ActionCountsResponse struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
	Overdue int64 `json:"overdue"`
}

// TeamCountsResponse summarizes the member collection
type TeamCountsResponse struct {
	TotalMembers int64 `json:"totalMembers"`
}

// WorkloadEntryResponse is one row of the workload overview
type WorkloadEntryResponse struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Capacity    float64 `json:"capacity"`
	CurrentLoad float64 `json:"currentLoad"`
	Utilization int     `json:"utilization"`
	Status      string  `json:"status"`
}

// DashboardResponse is the composed dashboard payload
type DashboardResponse struct {
	Decisions             DecisionCountsResponse       `json:"decisions"`
	Tasks                 TaskCountsResponse           `json:"tasks"`
	Actions               ActionCountsResponse         `json:"actions"`
	Team                  TeamCountsResponse           `json:"team"`
	UpcomingMeetings      []*meeting.MeetingResponse   `json:"upcomingMeetings"`
	RecentDecisions       []*decision.DecisionResponse `json:"recentDecisions"`
	UpcomingDeadlineTasks []*task.TaskResponse         `json:"upcomingDeadlineTasks"`
	OverdueActionsList    []*action.ActionResponse     `json:"overdueActionsList"`
	WorkloadOverview      []WorkloadEntryResponse      `json:"workloadOverview"`
}
