package action

import "time"

// OwnerResponse is a resolved member reference
type OwnerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MeetingRefResponse is a resolved meeting reference
type MeetingRefResponse struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// ActionResponse represents an action in API responses
type ActionResponse struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	MeetingID string              `json:"meetingId"`
	Meeting   *MeetingRefResponse `json:"meeting,omitempty"`
	Owners    []OwnerResponse     `json:"owners"`
	Deadline  *time.Time          `json:"deadline,omitempty"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}
