package presenter

import (
	memberdto "github.com/johnquangdev/team-ops/internal/adapter/dto/member"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
	memberUsecase "github.com/johnquangdev/team-ops/internal/usecase/member"
)

// ToMemberResponse converts a Member entity to MemberResponse DTO
func ToMemberResponse(m *entities.Member) *memberdto.MemberResponse {
	if m == nil {
		return nil
	}
	return &memberdto.MemberResponse{
		ID:             m.ID.String(),
		Name:           m.Name,
		Role:           m.Role,
		Email:          m.Email,
		WeeklyCapacity: m.WeeklyCapacity,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToTeamMemberResponse converts a member-with-load row to its DTO
func ToTeamMemberResponse(row memberUsecase.MemberWithLoad) *memberdto.TeamMemberResponse {
	return &memberdto.TeamMemberResponse{
		MemberResponse: *ToMemberResponse(row.Member),
		CurrentLoad:    row.CurrentLoad,
		ActiveTasks:    row.ActiveTasks,
	}
}

// ToTeamResponse converts the team list
func ToTeamResponse(rows []memberUsecase.MemberWithLoad) []*memberdto.TeamMemberResponse {
	out := make([]*memberdto.TeamMemberResponse, len(rows))
	for i, row := range rows {
		out[i] = ToTeamMemberResponse(row)
	}
	return out
}
