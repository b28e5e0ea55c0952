package http

import (
	"net/http"

	"leadcrm-backend/internal/infrastructure/metrics"
	ucAssignment "leadcrm-backend/internal/usecase/assignment"
	"leadcrm-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type AssignmentHandler struct {
	base
	uc *ucAssignment.Usecase
}

func NewAssignmentHandler(uc *ucAssignment.Usecase, log *logger.Logger, m *metrics.Metrics) *AssignmentHandler {
	return &AssignmentHandler{base: newBase(log, m), uc: uc}
}

type assignReq struct {
	LeadIDs    []uint64 `json:"lead_ids"    validate:"max=1000"`
	AssignedTo uint64   `json:"assigned_to"`
	AssignedBy uint64   `json:"assigned_by"`
}

func (h *AssignmentHandler) Assign(c echo.Context) error {
	actor, ok, err := actorOf(c)
	if !ok {
		return err
	}
	var req assignReq
	if ok, err := bind(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Assign(c.Request().Context(), ucAssignment.AssignInput{
		LeadIDs:    req.LeadIDs,
		AssignedTo: req.AssignedTo,
		AssignedBy: req.AssignedBy,
		Actor:      actor,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
