package workload

import (
	"context"
	"fmt"
	"math"

	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

// Status classifies a member's utilization band
type Status string

const (
	StatusOverloaded    Status = "overloaded"
	StatusHigh          Status = "high"
	StatusUnderutilized Status = "underutilized"
	StatusBalanced      Status = "balanced"
)

// MemberWorkload is the derived workload row for one member
type MemberWorkload struct {
	MemberID    string
	Name        string
	Role        string
	Capacity    float64
	CurrentLoad float64
	ActiveTasks int
	Utilization int
	Status      Status
}

// Service derives per-member utilization from members and their open tasks
type Service interface {
	// Overview computes the workload rows for all members, ordered by
	// member name
	Overview(ctx context.Context) ([]MemberWorkload, error)
}

type service struct {
	memberRepo repositories.MemberRepository
	taskRepo   repositories.TaskRepository
}

// NewService creates a new workload service
func NewService(memberRepo repositories.MemberRepository, taskRepo repositories.TaskRepository) Service {
	return &service{
		memberRepo: memberRepo,
		taskRepo:   taskRepo,
	}
}

// Overview computes the workload rows for all members
func (s *service) Overview(ctx context.Context) ([]MemberWorkload, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	loads, err := s.taskRepo.LoadByAssignee(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate task load: %w", err)
	}

	rows := make([]MemberWorkload, 0, len(members))
	for _, m := range members {
		load := loads[m.ID]
		utilization := Utilization(load.Hours, m.WeeklyCapacity)
		rows = append(rows, MemberWorkload{
			MemberID:    m.ID.String(),
			Name:        m.Name,
			Role:        m.Role,
			Capacity:    m.WeeklyCapacity,
			CurrentLoad: load.Hours,
			ActiveTasks: load.ActiveTasks,
			Utilization: utilization,
			Status:      Classify(utilization),
		})
	}
	return rows, nil
}

// Utilization returns the integer percentage of capacity committed to
// unfinished work. A member without capacity is reported as 0 regardless of
// load.
func Utilization(load, capacity float64) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(load / capacity * 100))
}

// Classify maps a utilization percentage to its band. Rules are evaluated
// in order, first match wins: >100 overloaded, >80 high, <30 underutilized,
// otherwise balanced.
func Classify(utilization int) Status {
	switch {
	case utilization > 100:
		return StatusOverloaded
	case utilization > 80:
		return StatusHigh
	case utilization < 30:
		return StatusUnderutilized
	default:
		return StatusBalanced
	}
}
