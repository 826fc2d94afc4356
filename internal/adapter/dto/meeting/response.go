package meeting

import (
	"time"

	"github.com/johnquangdev/team-ops/internal/adapter/dto/action"
	"github.com/johnquangdev/team-ops/internal/adapter/dto/decision"
)

// AttendeeResponse is a resolved member reference
type AttendeeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MeetingResponse represents a meeting in API responses
type MeetingResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Date      time.Time          `json:"date"`
	Agenda    string             `json:"agenda"`
	Notes     string             `json:"notes"`
	Attendees []AttendeeResponse `json:"attendees"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// MeetingDetailResponse inlines the actions and decisions that reference
// the meeting
type MeetingDetailResponse struct {
	MeetingResponse
	Actions   []*action.ActionResponse     `json:"actions"`
	Decisions []*decision.DecisionResponse `json:"decisions"`
}
