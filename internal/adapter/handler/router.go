package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/team-ops/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	teamHandler      *Team
	meetingHandler   *Meeting
	taskHandler      *Task
	decisionHandler  *Decision
	actionHandler    *Action
	dashboardHandler *Dashboard
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	teamHandler *Team,
	meetingHandler *Meeting,
	taskHandler *Task,
	decisionHandler *Decision,
	actionHandler *Action,
	dashboardHandler *Dashboard,
) *Router {
	return &Router{
		cfg:              cfg,
		teamHandler:      teamHandler,
		meetingHandler:   meetingHandler,
		taskHandler:      taskHandler,
		decisionHandler:  decisionHandler,
		actionHandler:    actionHandler,
		dashboardHandler: dashboardHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")

	rt.setupDecisionRoutes(api)
	rt.setupTeamRoutes(api)
	rt.setupTaskRoutes(api)
	rt.setupMeetingRoutes(api)
	rt.setupActionRoutes(api)
	rt.setupDashboardRoutes(api)
}

func (rt *Router) setupDecisionRoutes(g *echo.Group) {
	decisionGroup := g.Group("/decisions")

	decisionGroup.GET("", rt.decisionHandler.ListDecisions)
	decisionGroup.GET("/projects", rt.decisionHandler.ListProjects)
	decisionGroup.GET("/:id", rt.decisionHandler.GetDecision)
	decisionGroup.POST("", rt.decisionHandler.CreateDecision)
	decisionGroup.PUT("/:id", rt.decisionHandler.UpdateDecision)
	decisionGroup.DELETE("/:id", rt.decisionHandler.DeleteDecision)
}

func (rt *Router) setupTeamRoutes(g *echo.Group) {
	teamGroup := g.Group("/team")

	teamGroup.GET("", rt.teamHandler.ListMembers)
	teamGroup.POST("", rt.teamHandler.CreateMember)
	teamGroup.PUT("/:id", rt.teamHandler.UpdateMember)
	teamGroup.DELETE("/:id", rt.teamHandler.DeleteMember)
}

func (rt *Router) setupTaskRoutes(g *echo.Group) {
	taskGroup := g.Group("/tasks")

	taskGroup.GET("", rt.taskHandler.ListTasks)
	taskGroup.GET("/:id", rt.taskHandler.GetTask)
	taskGroup.POST("", rt.taskHandler.CreateTask)
	taskGroup.PUT("/:id", rt.taskHandler.UpdateTask)
	taskGroup.DELETE("/:id", rt.taskHandler.DeleteTask)
}

func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings")

	meetingGroup.GET("", rt.meetingHandler.ListMeetings)
	meetingGroup.GET("/:id", rt.meetingHandler.GetMeeting)
	meetingGroup.POST("", rt.meetingHandler.CreateMeeting)
	meetingGroup.PUT("/:id", rt.meetingHandler.UpdateMeeting)
	meetingGroup.DELETE("/:id", rt.meetingHandler.DeleteMeeting)
}

func (rt *Router) setupActionRoutes(g *echo.Group) {
	actionGroup := g.Group("/actions")

	actionGroup.GET("", rt.actionHandler.ListActions)
	actionGroup.POST("", rt.actionHandler.CreateAction)
	actionGroup.PUT("/:id", rt.actionHandler.UpdateAction)
	actionGroup.DELETE("/:id", rt.actionHandler.DeleteAction)
}

func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	g.GET("/dashboard", rt.dashboardHandler.GetDashboard)
}

// healthCheck returns server health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
