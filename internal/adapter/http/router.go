package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health      *Handler
	Leads       *LeadHandler
	Activities  *ActivityHandler
	WalkIns     *WalkInHandler
	Assignments *AssignmentHandler
	Attachments *AttachmentHandler
}

// RegisterRoutes mounts /health and /metrics publicly and every other route
// behind protect (auth, idempotency).
func RegisterRoutes(e *echo.Echo, h Handlers, metricsHandler http.Handler, protect ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)
	if metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(metricsHandler))
	}

	g := e.Group("", protect...)

	g.POST("/leads", h.Leads.Create)
	g.POST("/leads/import", h.Leads.Import)
	g.PUT("/leads/:lead_id/details", h.Leads.UpdateDetails)
	g.POST("/leads/:lead_id/verification-status", h.Leads.UpdateVerificationStatus)
	g.POST("/leads/:lead_id/application-status", h.Leads.UpdateApplicationStatus)
	g.POST("/leads/:lead_id/lead-status", h.Leads.UpdateLeadStatus)

	g.POST("/leads/:lead_id/activities", h.Activities.Add)
	g.PATCH("/activities/:activity_id/task-status", h.Activities.UpdateTaskStatus)

	g.POST("/leads/:lead_id/walk-ins", h.WalkIns.Schedule)
	g.POST("/walk-ins/:walk_in_id/reschedule", h.WalkIns.Reschedule)
	g.PATCH("/walk-ins/:walk_in_id/status", h.WalkIns.UpdateStatus)

	g.POST("/assignments", h.Assignments.Assign)

	g.POST("/leads/:lead_id/documents", h.Attachments.AddDocuments)
	g.DELETE("/loan-reports/:id", h.Attachments.DeleteLoanReport)
	g.DELETE("/credit-reports/:id", h.Attachments.DeleteCreditReport)
	g.DELETE("/documents/:id", h.Attachments.DeleteDocument)
}
