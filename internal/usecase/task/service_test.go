package task

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/johnquangdev/team-ops/errors"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
)

type fakeTaskRepo struct {
	repositories.TaskRepository
	tasks map[uuid.UUID]*entities.Task
}

func newFakeTaskRepo(tasks ...*entities.Task) *fakeTaskRepo {
	byID := make(map[uuid.UUID]*entities.Task)
	for _, tk := range tasks {
		byID[tk.ID] = tk
	}
	return &fakeTaskRepo{tasks: byID}
}

func (f *fakeTaskRepo) Create(ctx context.Context, tk *entities.Task) error {
	if tk.ID == uuid.Nil {
		tk.ID = uuid.New()
	}
	f.tasks[tk.ID] = tk
	return nil
}

func (f *fakeTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	tk, ok := f.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tk, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, tk *entities.Task) error {
	f.tasks[tk.ID] = tk
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.tasks, id)
	return nil
}

type fakeMemberRepo struct {
	repositories.MemberRepository
	existing map[uuid.UUID]bool
}

func (f *fakeMemberRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

func TestCreateDefaultsStatusAndPriority(t *testing.T) {
	assignee := uuid.New()
	svc := NewService(newFakeTaskRepo(), &fakeMemberRepo{existing: map[uuid.UUID]bool{assignee: true}})

	tk, err := svc.Create(context.Background(), CreateTaskInput{Title: "Write docs", AssigneeID: assignee})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if tk.Status != entities.TaskStatusTodo {
		t.Fatalf("expected default todo status, got %q", tk.Status)
	}
	if tk.Priority != entities.TaskPriorityMedium {
		t.Fatalf("expected default medium priority, got %q", tk.Priority)
	}
}

func TestCreateRejectsUnknownAssignee(t *testing.T) {
	svc := NewService(newFakeTaskRepo(), &fakeMemberRepo{})

	_, err := svc.Create(context.Background(), CreateTaskInput{Title: "Write docs", AssigneeID: uuid.New()})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_VALIDATION {
		t.Fatalf("expected validation error for unknown assignee, got %v", err)
	}
}

func TestUpdateReassignChecksMember(t *testing.T) {
	assignee := uuid.New()
	existing := &entities.Task{ID: uuid.New(), Title: "Write docs", AssigneeID: assignee}
	repo := newFakeTaskRepo(existing)
	svc := NewService(repo, &fakeMemberRepo{existing: map[uuid.UUID]bool{assignee: true}})

	unknown := uuid.New()
	_, err := svc.Update(context.Background(), existing.ID, UpdateTaskInput{AssigneeID: &unknown})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_VALIDATION {
		t.Fatalf("expected validation error, got %v", err)
	}
	if existing.AssigneeID != assignee {
		t.Fatal("assignee changed despite failed reference check")
	}
}

func TestUpdateUnknownTaskReturnsNotFound(t *testing.T) {
	svc := NewService(newFakeTaskRepo(), &fakeMemberRepo{})

	title := "Anything"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateTaskInput{Title: &title})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGetUnknownTaskReturnsNotFound(t *testing.T) {
	svc := NewService(newFakeTaskRepo(), &fakeMemberRepo{})

	_, err := svc.Get(context.Background(), uuid.New())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestDeleteUnknownTaskSucceeds(t *testing.T) {
	svc := NewService(newFakeTaskRepo(), &fakeMemberRepo{})
	if err := svc.Delete(context.Background(), uuid.New()); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
}
