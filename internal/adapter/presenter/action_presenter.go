package presenter

import (
	actiondto "github.com/johnquangdev/team-ops/internal/adapter/dto/action"
	actionUsecase "github.com/johnquangdev/team-ops/internal/usecase/action"
)

// ToActionResponse converts an action output to ActionResponse DTO
func ToActionResponse(out actionUsecase.ActionOutput) *actiondto.ActionResponse {
	a := out.Action
	if a == nil {
		return nil
	}

	owners := make([]actiondto.OwnerResponse, len(out.Owners))
	for i, o := range out.Owners {
		owners[i] = actiondto.OwnerResponse{ID: o.ID, Name: o.Name}
	}

	response := &actiondto.ActionResponse{
		ID:        a.ID.String(),
		Title:     a.Title,
		MeetingID: a.MeetingID.String(),
		Owners:    owners,
		Deadline:  a.Deadline,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	// Include meeting if loaded
	if a.Meeting != nil {
		response.Meeting = &actiondto.MeetingRefResponse{
			ID:    a.Meeting.ID.String(),
			Title: a.Meeting.Title,
			Date:  a.Meeting.Date,
		}
	}
	return response
}

// ToActionListResponse converts a slice of action outputs
func ToActionListResponse(outs []actionUsecase.ActionOutput) []*actiondto.ActionResponse {
	responses := make([]*actiondto.ActionResponse, len(outs))
	for i, out := range outs {
		responses[i] = ToActionResponse(out)
	}
	return responses
}
