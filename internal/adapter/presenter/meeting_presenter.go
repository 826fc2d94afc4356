package presenter

import (
	meetingdto "github.com/johnquangdev/team-ops/internal/adapter/dto/meeting"
	meetingUsecase "github.com/johnquangdev/team-ops/internal/usecase/meeting"
)

// ToMeetingResponse converts a meeting output to MeetingResponse DTO
func ToMeetingResponse(out meetingUsecase.MeetingOutput) *meetingdto.MeetingResponse {
	m := out.Meeting
	if m == nil {
		return nil
	}

	attendees := make([]meetingdto.AttendeeResponse, len(out.Attendees))
	for i, a := range out.Attendees {
		attendees[i] = meetingdto.AttendeeResponse{ID: a.ID, Name: a.Name}
	}

	return &meetingdto.MeetingResponse{
		ID:        m.ID.String(),
		Title:     m.Title,
		Date:      m.Date,
		Agenda:    m.Agenda,
		Notes:     m.Notes,
		Attendees: attendees,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToMeetingListResponse converts a slice of meeting outputs
func ToMeetingListResponse(outs []meetingUsecase.MeetingOutput) []*meetingdto.MeetingResponse {
	responses := make([]*meetingdto.MeetingResponse, len(outs))
	for i, out := range outs {
		responses[i] = ToMeetingResponse(out)
	}
	return responses
}

// ToMeetingDetailResponse converts a meeting detail output, inlining its
// actions and decisions
func ToMeetingDetailResponse(detail *meetingUsecase.MeetingDetailOutput) *meetingdto.MeetingDetailResponse {
	if detail == nil {
		return nil
	}
	return &meetingdto.MeetingDetailResponse{
		MeetingResponse: *ToMeetingResponse(detail.MeetingOutput),
		Actions:         ToActionListResponse(detail.Actions),
		Decisions:       ToDecisionListResponse(detail.Decisions),
	}
}
