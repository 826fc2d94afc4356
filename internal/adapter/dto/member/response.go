package member

import "time"

// MemberResponse represents a member in API responses
type MemberResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Email          string    `json:"email"`
	WeeklyCapacity float64   `json:"weeklyCapacity"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TeamMemberResponse is a member annotated with workload figures, returned
// by the team list
type TeamMemberResponse struct {
	MemberResponse
	CurrentLoad float64 `json:"currentLoad"`
	ActiveTasks int     `json:"activeTasks"`
}
