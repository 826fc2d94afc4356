package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/team-ops/errors"
	taskdto "github.com/johnquangdev/team-ops/internal/adapter/dto/task"
	"github.com/johnquangdev/team-ops/internal/adapter/presenter"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
	taskUsecase "github.com/johnquangdev/team-ops/internal/usecase/task"
)

// Task handles task-related HTTP requests
type Task struct {
	taskService taskUsecase.Service
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService taskUsecase.Service, logger *zap.Logger) *Task {
	return &Task{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks handles GET /tasks
func (h *Task) ListTasks(c echo.Context) error {
	var req taskdto.ListTasksRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	filters := repositories.TaskFilters{Project: req.Project}
	if req.Assignee != "" {
		assigneeID, err := uuid.Parse(req.Assignee)
		if err == nil {
			filters.AssigneeID = &assigneeID
		}
	}
	if req.Status != "" {
		status := entities.TaskStatus(req.Status)
		filters.Status = &status
	}

	tasks, err := h.taskService.List(c.Request().Context(), filters)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTaskListResponse(tasks))
}

// GetTask handles GET /tasks/:id
func (h *Task) GetTask(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	t, err := h.taskService.Get(c.Request().Context(), id)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTaskResponse(t))
}

// CreateTask handles POST /tasks
func (h *Task) CreateTask(c echo.Context) error {
	var req taskdto.CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	assigneeID, err := uuid.Parse(req.Assignee)
	if err != nil {
		return handleError(h.logger, c, apperrors.ErrValidation("assignee must be a valid UUID"))
	}

	input := taskUsecase.CreateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		AssigneeID:     assigneeID,
		EstimatedHours: req.EstimatedHours,
		Status:         entities.TaskStatus(req.Status),
		Priority:       entities.TaskPriority(req.Priority),
		DueDate:        req.DueDate,
		Project:        req.Project,
	}

	t, err := h.taskService.Create(c.Request().Context(), input)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToTaskResponse(t))
}

// UpdateTask handles PUT /tasks/:id
func (h *Task) UpdateTask(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	var req taskdto.UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	input := taskUsecase.UpdateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
		DueDate:        req.DueDate,
		Project:        req.Project,
	}
	if req.Assignee != nil {
		assigneeID, err := uuid.Parse(*req.Assignee)
		if err != nil {
			return handleError(h.logger, c, apperrors.ErrValidation("assignee must be a valid UUID"))
		}
		input.AssigneeID = &assigneeID
	}
	if req.Status != nil {
		status := entities.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := entities.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	t, err := h.taskService.Update(c.Request().Context(), id, input)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTaskResponse(t))
}

// DeleteTask handles DELETE /tasks/:id
func (h *Task) DeleteTask(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	if err := h.taskService.Delete(c.Request().Context(), id); err != nil {
		return handleError(h.logger, c, err)
	}
	return handleDeleted(c)
}
