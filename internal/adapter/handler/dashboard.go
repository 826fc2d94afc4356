package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/team-ops/internal/adapter/presenter"
	dashboardUsecase "github.com/johnquangdev/team-ops/internal/usecase/dashboard"
)

// Dashboard handles the aggregated overview endpoint
type Dashboard struct {
	dashboardService dashboardUsecase.Service
	logger           *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService dashboardUsecase.Service, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard handles GET /dashboard
func (h *Dashboard) GetDashboard(c echo.Context) error {
	overview, err := h.dashboardService.Compose(c.Request().Context())
	if err != nil {
		return handleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToDashboardResponse(overview))
}
