package task

import (
	"time"

	"github.com/johnquangdev/team-ops/internal/adapter/dto/member"
)

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Assignee       *member.MemberResponse `json:"assignee,omitempty"`
	EstimatedHours float64                `json:"estimatedHours"`
	Status         string                 `json:"status"`
	Priority       string                 `json:"priority"`
	DueDate        *time.Time             `json:"dueDate,omitempty"`
	Project        string                 `json:"project"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}
