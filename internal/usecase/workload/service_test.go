package workload

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

func TestUtilization(t *testing.T) {
	cases := []struct {
		name     string
		load     float64
		capacity float64
		want     int
	}{
		{"zero capacity", 10, 0, 0},
		{"negative capacity", 10, -5, 0},
		{"no load", 0, 40, 0},
		{"quarter load", 10, 40, 25},
		{"full load", 40, 40, 100},
		{"over capacity", 44, 40, 110},
		{"rounds half up", 32.2, 40, 81},
		{"rounds down", 32.1, 40, 80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Utilization(tc.load, tc.capacity); got != tc.want {
				t.Fatalf("Utilization(%v, %v) = %d, want %d", tc.load, tc.capacity, got, tc.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		utilization int
		want        Status
	}{
		{0, StatusUnderutilized},
		{29, StatusUnderutilized},
		{30, StatusBalanced},
		{80, StatusBalanced},
		{81, StatusHigh},
		{100, StatusHigh},
		{101, StatusOverloaded},
		{250, StatusOverloaded},
	}
	for _, tc := range cases {
		if got := Classify(tc.utilization); got != tc.want {
			t.Fatalf("Classify(%d) = %q, want %q", tc.utilization, got, tc.want)
		}
	}
}

type stubMemberRepo struct {
	repositories.MemberRepository
	members []*entities.Member
}

func (s *stubMemberRepo) List(ctx context.Context) ([]*entities.Member, error) {
	return s.members, nil
}

type stubTaskRepo struct {
	repositories.TaskRepository
	loads map[uuid.UUID]repositories.AssigneeLoad
}

func (s *stubTaskRepo) LoadByAssignee(ctx context.Context) (map[uuid.UUID]repositories.AssigneeLoad, error) {
	return s.loads, nil
}

func TestOverview(t *testing.T) {
	busy := &entities.Member{ID: uuid.New(), Name: "Ana", Role: "dev", WeeklyCapacity: 40}
	idle := &entities.Member{ID: uuid.New(), Name: "Bo", Role: "ops", WeeklyCapacity: 40}
	zero := &entities.Member{ID: uuid.New(), Name: "Cal", Role: "pm", WeeklyCapacity: 0}

	svc := NewService(
		&stubMemberRepo{members: []*entities.Member{busy, idle, zero}},
		&stubTaskRepo{loads: map[uuid.UUID]repositories.AssigneeLoad{
			busy.ID: {Hours: 44, ActiveTasks: 3},
			zero.ID: {Hours: 12, ActiveTasks: 1},
		}},
	)

	rows, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].Utilization != 110 || rows[0].Status != StatusOverloaded {
		t.Fatalf("busy member: got %d %q", rows[0].Utilization, rows[0].Status)
	}
	if rows[0].ActiveTasks != 3 || rows[0].CurrentLoad != 44 {
		t.Fatalf("busy member load: got %v hours, %d tasks", rows[0].CurrentLoad, rows[0].ActiveTasks)
	}
	if rows[1].Utilization != 0 || rows[1].Status != StatusUnderutilized {
		t.Fatalf("idle member: got %d %q", rows[1].Utilization, rows[1].Status)
	}
	// Capacity 0 reports 0 utilization even with load
	if rows[2].Utilization != 0 || rows[2].Status != StatusUnderutilized {
		t.Fatalf("zero-capacity member: got %d %q", rows[2].Utilization, rows[2].Status)
	}
}
