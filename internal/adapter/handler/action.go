package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/team-ops/errors"
	actiondto "github.com/johnquangdev/team-ops/internal/adapter/dto/action"
	"github.com/johnquangdev/team-ops/internal/adapter/presenter"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
	actionUsecase "github.com/johnquangdev/team-ops/internal/usecase/action"
)

// Action handles action item HTTP requests
type Action struct {
	actionService actionUsecase.Service
	logger        *zap.Logger
}

// NewActionHandler creates a new action handler
func NewActionHandler(actionService actionUsecase.Service, logger *zap.Logger) *Action {
	return &Action{
		actionService: actionService,
		logger:        logger,
	}
}

// ListActions handles GET /actions
func (h *Action) ListActions(c echo.Context) error {
	var req actiondto.ListActionsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	filters := repositories.ActionFilters{Owner: req.Owner}
	if req.Status != "" {
		status := entities.ActionStatus(req.Status)
		filters.Status = &status
	}

	actions, err := h.actionService.List(c.Request().Context(), filters)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToActionListResponse(actions))
}

// CreateAction handles POST /actions
func (h *Action) CreateAction(c echo.Context) error {
	var req actiondto.CreateActionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	meetingID, err := uuid.Parse(req.MeetingID)
	if err != nil {
		return handleError(h.logger, c, apperrors.ErrValidation("meetingId must be a valid UUID"))
	}

	input := actionUsecase.CreateActionInput{
		Title:     req.Title,
		MeetingID: meetingID,
		Owners:    req.Owners,
		Deadline:  req.Deadline,
		Status:    entities.ActionStatus(req.Status),
	}

	out, err := h.actionService.Create(c.Request().Context(), input)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToActionResponse(*out))
}

// UpdateAction handles PUT /actions/:id
func (h *Action) UpdateAction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	var req actiondto.UpdateActionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	input := actionUsecase.UpdateActionInput{
		Title:    req.Title,
		Owners:   req.Owners,
		Deadline: req.Deadline,
		Status:   (*entities.ActionStatus)(req.Status),
	}
	if req.MeetingID != nil {
		meetingID, err := uuid.Parse(*req.MeetingID)
		if err != nil {
			return handleError(h.logger, c, apperrors.ErrValidation("meetingId must be a valid UUID"))
		}
		input.MeetingID = &meetingID
	}

	out, err := h.actionService.Update(c.Request().Context(), id, input)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToActionResponse(*out))
}

// DeleteAction handles DELETE /actions/:id
func (h *Action) DeleteAction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	if err := h.actionService.Delete(c.Request().Context(), id); err != nil {
		return handleError(h.logger, c, err)
	}
	return handleDeleted(c)
}
