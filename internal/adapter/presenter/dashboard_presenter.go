package presenter

import (
	dashboarddto "github.com/johnquangdev/team-ops/internal/adapter/dto/dashboard"
	dashboardUsecase "github.com/johnquangdev/team-ops/internal/usecase/dashboard"
)

// ToDashboardResponse converts the composed overview to its DTO
func ToDashboardResponse(o *dashboardUsecase.Overview) *dashboarddto.DashboardResponse {
	if o == nil {
		return nil
	}

	workload := make([]dashboarddto.WorkloadEntryResponse, len(o.Workload))
	for i, w := range o.Workload {
		workload[i] = dashboarddto.WorkloadEntryResponse{
			Name:        w.Name,
			Role:        w.Role,
			Capacity:    w.Capacity,
			CurrentLoad: w.CurrentLoad,
			Utilization: w.Utilization,
			Status:      string(w.Status),
		}
	}

	return &dashboarddto.DashboardResponse{
		Decisions: dashboarddto.DecisionCountsResponse{
			Total:   o.Decisions.Total,
			Pending: o.Decisions.Pending,
			Active:  o.Decisions.Active,
		},
		Tasks: dashboarddto.TaskCountsResponse{
			Total:      o.Tasks.Total,
			Todo:       o.Tasks.Todo,
			InProgress: o.Tasks.InProgress,
			Done:       o.Tasks.Done,
		},
		Actions: dashboarddto.ActionCountsResponse{
			Total:   o.Actions.Total,
			Pending: o.Actions.Pending,
			Overdue: o.Actions.Overdue,
		},
		Team: dashboarddto.TeamCountsResponse{
			TotalMembers: o.Team.TotalMembers,
		},
		UpcomingMeetings:      ToMeetingListResponse(o.UpcomingMeetings),
		RecentDecisions:       ToDecisionListResponse(o.RecentDecisions),
		UpcomingDeadlineTasks: ToTaskListResponse(o.UpcomingDeadlineTasks),
		OverdueActionsList:    ToActionListResponse(o.OverdueActions),
		WorkloadOverview:      workload,
	}
}
