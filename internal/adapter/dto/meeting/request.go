package meeting

import "time"

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title     string     `json:"title" validate:"required,min=1,max=255"`
	Date      *time.Time `json:"date" validate:"required"`
	Agenda    string     `json:"agenda,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Attendees []string   `json:"attendees,omitempty" validate:"omitempty,dive,uuid"`
}

// UpdateMeetingRequest represents a partial meeting update
type UpdateMeetingRequest struct {
	Title     *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Date      *time.Time `json:"date,omitempty"`
	Agenda    *string    `json:"agenda,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Attendees *[]string  `json:"attendees,omitempty" validate:"omitempty,dive,uuid"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Search string `query:"search"`
	Title  string `query:"title"`
}
