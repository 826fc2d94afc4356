package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	memberdto "github.com/johnquangdev/team-ops/internal/adapter/dto/member"
	"github.com/johnquangdev/team-ops/internal/adapter/presenter"
	memberUsecase "github.com/johnquangdev/team-ops/internal/usecase/member"
)

// Team handles member-related HTTP requests
type Team struct {
	memberService memberUsecase.Service
	logger        *zap.Logger
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(memberService memberUsecase.Service, logger *zap.Logger) *Team {
	return &Team{
		memberService: memberService,
		logger:        logger,
	}
}

// ListMembers handles GET /team
// Every row carries the member's current load and open task count.
func (h *Team) ListMembers(c echo.Context) error {
	rows, err := h.memberService.ListWithLoad(c.Request().Context())
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTeamResponse(rows))
}

// CreateMember handles POST /team
func (h *Team) CreateMember(c echo.Context) error {
	var req memberdto.CreateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	input := memberUsecase.CreateMemberInput{
		Name:           req.Name,
		Role:           req.Role,
		Email:          req.Email,
		WeeklyCapacity: req.WeeklyCapacity,
	}

	m, err := h.memberService.Create(c.Request().Context(), input)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToMemberResponse(m))
}

// UpdateMember handles PUT /team/:id
func (h *Team) UpdateMember(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	var req memberdto.UpdateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	input := memberUsecase.UpdateMemberInput{
		Name:           req.Name,
		Role:           req.Role,
		Email:          req.Email,
		WeeklyCapacity: req.WeeklyCapacity,
	}

	m, err := h.memberService.Update(c.Request().Context(), id, input)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToMemberResponse(m))
}

// DeleteMember handles DELETE /team/:id
// Deleting a member also deletes the tasks assigned to them.
func (h *Team) DeleteMember(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	if err := h.memberService.Delete(c.Request().Context(), id); err != nil {
		return handleError(h.logger, c, err)
	}
	return handleDeleted(c)
}
