package decision

import "time"

// MadeByResponse is a resolved member reference
type MadeByResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DecisionResponse represents a decision in API responses
type DecisionResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Context      string               `json:"context"`
	Constraints  string               `json:"constraints"`
	Alternatives []AlternativePayload `json:"alternatives"`
	Outcome      string               `json:"outcome"`
	Tags         []string             `json:"tags"`
	Project      string               `json:"project"`
	Team         []string             `json:"team"`
	MadeBy       *MadeByResponse      `json:"madeBy,omitempty"`
	DecisionDate time.Time            `json:"decisionDate"`
	MeetingID    *string              `json:"meetingId"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}
