package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/team-ops/errors"
	decisiondto "github.com/johnquangdev/team-ops/internal/adapter/dto/decision"
	"github.com/johnquangdev/team-ops/internal/adapter/presenter"
	"github.com/johnquangdev/team-ops/internal/domain/entities"
	"github.com/johnquangdev/team-ops/internal/domain/repositories"
	decisionUsecase "github.com/johnquangdev/team-ops/internal/usecase/decision"
)

// Decision handles decision-related HTTP requests
type Decision struct {
	decisionService decisionUsecase.Service
	logger          *zap.Logger
}

// NewDecisionHandler creates a new decision handler
func NewDecisionHandler(decisionService decisionUsecase.Service, logger *zap.Logger) *Decision {
	return &Decision{
		decisionService: decisionService,
		logger:          logger,
	}
}

// ListDecisions handles GET /decisions
func (h *Decision) ListDecisions(c echo.Context) error {
	var req decisiondto.ListDecisionsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	filters := repositories.DecisionFilters{
		Search:  req.Search,
		Project: req.Project,
		Team:    req.Team,
	}
	if req.Outcome != "" {
		outcome := entities.DecisionOutcome(req.Outcome)
		filters.Outcome = &outcome
	}

	decisions, err := h.decisionService.List(c.Request().Context(), filters)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToDecisionListResponse(decisions))
}

// ListProjects handles GET /decisions/projects
func (h *Decision) ListProjects(c echo.Context) error {
	projects, err := h.decisionService.Projects(c.Request().Context())
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, projects)
}

// GetDecision handles GET /decisions/:id
func (h *Decision) GetDecision(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	d, err := h.decisionService.Get(c.Request().Context(), id)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToDecisionResponse(d))
}

// CreateDecision handles POST /decisions
func (h *Decision) CreateDecision(c echo.Context) error {
	var req decisiondto.CreateDecisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	input := decisionUsecase.CreateDecisionInput{
		Title:        req.Title,
		Description:  req.Description,
		Context:      req.Context,
		Constraints:  req.Constraints,
		Alternatives: toAlternatives(req.Alternatives),
		Outcome:      entities.DecisionOutcome(req.Outcome),
		Tags:         req.Tags,
		Project:      req.Project,
		Team:         req.Team,
		DecisionDate: req.DecisionDate,
	}
	if req.MadeBy != nil {
		madeByID, err := uuid.Parse(*req.MadeBy)
		if err != nil {
			return handleError(h.logger, c, apperrors.ErrValidation("madeBy must be a valid UUID"))
		}
		input.MadeByID = &madeByID
	}
	if req.MeetingID != nil {
		meetingID, err := uuid.Parse(*req.MeetingID)
		if err != nil {
			return handleError(h.logger, c, apperrors.ErrValidation("meetingId must be a valid UUID"))
		}
		input.MeetingID = &meetingID
	}

	d, err := h.decisionService.Create(c.Request().Context(), input)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToDecisionResponse(d))
}

// UpdateDecision handles PUT /decisions/:id
// The body is read raw so an explicit `"meetingId": null` (or madeBy) can
// be told apart from an absent field: null clears the reference, absence
// leaves it unchanged.
func (h *Decision) UpdateDecision(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return handleError(h.logger, c, apperrors.ErrInvalidPayload())
	}

	var req decisiondto.UpdateDecisionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return handleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return handleError(h.logger, c, apperrors.ErrValidation(err.Error()))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return handleError(h.logger, c, apperrors.ErrInvalidPayload())
	}

	input := decisionUsecase.UpdateDecisionInput{
		Title:        req.Title,
		Description:  req.Description,
		Context:      req.Context,
		Constraints:  req.Constraints,
		Outcome:      (*entities.DecisionOutcome)(req.Outcome),
		Tags:         req.Tags,
		Project:      req.Project,
		Team:         req.Team,
		DecisionDate: req.DecisionDate,
	}
	if req.Alternatives != nil {
		alternatives := toAlternatives(*req.Alternatives)
		input.Alternatives = &alternatives
	}

	madeBy, err := parseNullableRef(raw, "madeBy", req.MadeBy)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	input.MadeByID = madeBy

	meetingID, err := parseNullableRef(raw, "meetingId", req.MeetingID)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	input.MeetingID = meetingID

	d, err := h.decisionService.Update(c.Request().Context(), id, input)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToDecisionResponse(d))
}

// DeleteDecision handles DELETE /decisions/:id
func (h *Decision) DeleteDecision(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	if err := h.decisionService.Delete(c.Request().Context(), id); err != nil {
		return handleError(h.logger, c, err)
	}
	return handleDeleted(c)
}

func toAlternatives(payload []decisiondto.AlternativePayload) []entities.Alternative {
	alternatives := make([]entities.Alternative, len(payload))
	for i, alt := range payload {
		alternatives[i] = entities.Alternative{
			Title:       alt.Title,
			Description: alt.Description,
		}
	}
	return alternatives
}

// parseNullableRef interprets an optional reference field in a partial
// update: absent means unchanged (nil), JSON null means clear (pointer to
// nil), a value means replace.
func parseNullableRef(raw map[string]json.RawMessage, key string, value *string) (**uuid.UUID, error) {
	rawVal, present := raw[key]
	if !present {
		return nil, nil
	}
	if string(rawVal) == "null" {
		var cleared *uuid.UUID
		return &cleared, nil
	}
	if value == nil {
		return nil, apperrors.ErrValidation(key + " must be a string id or null")
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, apperrors.ErrValidation(key + " must be a valid UUID")
	}
	ref := &id
	return &ref, nil
}
