package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingdto "github.com/johnquangdev/team-ops/internal/adapter/dto/meeting"
	"github.com/johnquangdev/team-ops/internal/adapter/presenter"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
	meetingUsecase "github.com/johnquangdev/team-ops/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// ListMeetings handles GET /meetings
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req meetingdto.ListMeetingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	filters := repositories.MeetingFilters{
		Search: req.Search,
		Title:  req.Title,
	}

	meetings, err := h.meetingService.List(c.Request().Context(), filters)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToMeetingListResponse(meetings))
}

// GetMeeting handles GET /meetings/:id
// The response inlines the actions and decisions referencing the meeting.
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	detail, err := h.meetingService.Get(c.Request().Context(), id)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToMeetingDetailResponse(detail))
}

// CreateMeeting handles POST /meetings
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	input := meetingUsecase.CreateMeetingInput{
		Title:     req.Title,
		Date:      *req.Date,
		Agenda:    req.Agenda,
		Notes:     req.Notes,
		Attendees: req.Attendees,
	}

	m, err := h.meetingService.Create(c.Request().Context(), input)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToMeetingResponse(*m))
}

// UpdateMeeting handles PUT /meetings/:id
func (h *Meeting) UpdateMeeting(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	var req meetingdto.UpdateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	input := meetingUsecase.UpdateMeetingInput{
		Title:     req.Title,
		Date:      req.Date,
		Agenda:    req.Agenda,
		Notes:     req.Notes,
		Attendees: req.Attendees,
	}

	m, err := h.meetingService.Update(c.Request().Context(), id, input)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(*m))
}

// DeleteMeeting handles DELETE /meetings/:id
// Actions referencing the meeting are deleted; decisions keep the record
// but lose the reference.
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	if err := h.meetingService.Delete(c.Request().Context(), id); err != nil {
		return handleError(h.logger, c, err)
	}
	return handleDeleted(c)
}
