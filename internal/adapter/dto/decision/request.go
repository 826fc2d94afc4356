package decision

import "time"

// AlternativePayload is one considered option in a decision payload
type AlternativePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateDecisionRequest represents the request to create a decision
type CreateDecisionRequest struct {
	Title        string               `json:"title" validate:"required,min=1,max=255"`
	Description  string               `json:"description,omitempty"`
	Context      string               `json:"context,omitempty"`
	Constraints  string               `json:"constraints,omitempty"`
	Alternatives []AlternativePayload `json:"alternatives,omitempty"`
	Outcome      string               `json:"outcome,omitempty" validate:"omitempty,oneof=pending successful failed revisited"`
	Tags         []string             `json:"tags,omitempty"`
	Project      string               `json:"project,omitempty" validate:"omitempty,max=255"`
	Team         []string             `json:"team,omitempty" validate:"omitempty,dive,oneof=product data leadership operations commercial development"`
	MadeBy       *string              `json:"madeBy,omitempty" validate:"omitempty,uuid"`
	DecisionDate *time.Time           `json:"decisionDate,omitempty"`
	MeetingID    *string              `json:"meetingId,omitempty" validate:"omitempty,uuid"`
}

// UpdateDecisionRequest represents a partial decision update.
// MadeBy and MeetingID accept an explicit JSON null to clear the reference;
// the handler distinguishes null from absent by inspecting the raw body.
type UpdateDecisionRequest struct {
	Title        *string               `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description  *string               `json:"description,omitempty"`
	Context      *string               `json:"context,omitempty"`
	Constraints  *string               `json:"constraints,omitempty"`
	Alternatives *[]AlternativePayload `json:"alternatives,omitempty"`
	Outcome      *string               `json:"outcome,omitempty" validate:"omitempty,oneof=pending successful failed revisited"`
	Tags         *[]string             `json:"tags,omitempty"`
	Project      *string               `json:"project,omitempty" validate:"omitempty,max=255"`
	Team         *[]string             `json:"team,omitempty" validate:"omitempty,dive,oneof=product data leadership operations commercial development"`
	MadeBy       *string               `json:"madeBy" validate:"omitempty,uuid"`
	DecisionDate *time.Time            `json:"decisionDate,omitempty"`
	MeetingID    *string               `json:"meetingId" validate:"omitempty,uuid"`
}

// ListDecisionsRequest represents query parameters for listing decisions
type ListDecisionsRequest struct {
	Search  string `query:"search"`
	Project string `query:"project"`
	Team    string `query:"team" validate:"omitempty,oneof=product data leadership operations commercial development"`
	Outcome string `query:"outcome" validate:"omitempty,oneof=pending successful failed revisited"`
}
