package presenter

import (
	decisiondto "github.com/johnquangdev/team-ops/internal/adapter/dto/decision"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
)

// ToDecisionResponse converts a Decision entity to DecisionResponse DTO
func ToDecisionResponse(d *entities.Decision) *decisiondto.DecisionResponse {
	if d == nil {
		return nil
	}

	alternatives := make([]decisiondto.AlternativePayload, len(d.Alternatives))
	for i, alt := range d.Alternatives {
		alternatives[i] = decisiondto.AlternativePayload{
			Title:       alt.Title,
			Description: alt.Description,
		}
	}

	response := &decisiondto.DecisionResponse{
		ID:           d.ID.String(),
		Title:        d.Title,
		Description:  d.Description,
		Context:      d.Context,
		Constraints:  d.Constraints,
		Alternatives: alternatives,
		Outcome:      string(d.Outcome),
		Tags:         d.Tags,
		Project:      d.Project,
		Team:         d.Team,
		DecisionDate: d.DecisionDate,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if response.Tags == nil {
		response.Tags = []string{}
	}
	if response.Team == nil {
		response.Team = []string{}
	}

	if d.MeetingID != nil {
		id := d.MeetingID.String()
		response.MeetingID = &id
	}

	// Include madeBy if loaded
	if d.MadeBy != nil {
		response.MadeBy = &decisiondto.MadeByResponse{
			ID:   d.MadeBy.ID.String(),
			Name: d.MadeBy.Name,
		}
	}
	return response
}

// ToDecisionListResponse converts a slice of Decision entities
func ToDecisionListResponse(decisions []*entities.Decision) []*decisiondto.DecisionResponse {
	out := make([]*decisiondto.DecisionResponse, len(decisions))
	for i, d := range decisions {
		out[i] = ToDecisionResponse(d)
	}
	return out
}
