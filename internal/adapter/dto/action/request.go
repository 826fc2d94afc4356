package action

import "time"

// CreateActionRequest represents the request to create an action
type CreateActionRequest struct {
	Title     string     `json:"title" validate:"required,min=1,max=255"`
	MeetingID string     `json:"meetingId" validate:"required,uuid"`
	Owners    []string   `json:"owners" validate:"required,min=1,dive,uuid"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	Status    string     `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed overdue"`
}

// UpdateActionRequest represents a partial action update
type UpdateActionRequest struct {
	Title     *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	MeetingID *string    `json:"meetingId,omitempty" validate:"omitempty,uuid"`
	Owners    *[]string  `json:"owners,omitempty" validate:"omitempty,min=1,dive,uuid"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	Status    *string    `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed overdue"`
}

// ListActionsRequest represents query parameters for listing actions
type ListActionsRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=pending in_progress completed overdue"`
	Owner  string `query:"owner"`
}
