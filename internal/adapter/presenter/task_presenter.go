package presenter

import (
	taskdto "github.com/johnquangdev/team-ops/internal/adapter/dto/task"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
)

// ToTaskResponse converts a Task entity to TaskResponse DTO
func ToTaskResponse(t *entities.Task) *taskdto.TaskResponse {
	if t == nil {
		return nil
	}
	response := &taskdto.TaskResponse{
		ID:             t.ID.String(),
		Title:          t.Title,
		Description:    t.Description,
		EstimatedHours: t.EstimatedHours,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		DueDate:        t.DueDate,
		Project:        t.Project,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}

	// Include assignee if loaded
	if t.Assignee != nil {
		response.Assignee = ToMemberResponse(t.Assignee)
	}
	return response
}

// ToTaskListResponse converts a slice of Task entities
func ToTaskListResponse(tasks []*entities.Task) []*taskdto.TaskResponse {
	out := make([]*taskdto.TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskResponse(t)
	}
	return out
}
