package http

import (
	"net/http"
	"time"

	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/infrastructure/metrics"
	ucWalkin "leadcrm-backend/internal/usecase/walkin"
	"leadcrm-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type WalkInHandler struct {
	base
	uc *ucWalkin.Usecase
}

func NewWalkInHandler(uc *ucWalkin.Usecase, log *logger.Logger, m *metrics.Metrics) *WalkInHandler {
	return &WalkInHandler{base: newBase(log, m), uc: uc}
}

type scheduleWalkInReq struct {
	WalkInDateTime time.Time `json:"walk_in_date_time"`
	WalkInStatus   string    `json:"walk_in_status"`
	Note           string    `json:"note"              validate:"max=1000"`
}

func (h *WalkInHandler) Schedule(c echo.Context) error {
	actor, ok, err := actorOf(c)
	if !ok {
		return err
	}
	leadID, ok, err := pathID(c, "lead_id")
	if !ok {
		return err
	}
	var req scheduleWalkInReq
	if ok, err := bind(c, &req); !ok {
		return err
	}

	dto, err := h.uc.Schedule(c.Request().Context(), ucWalkin.ScheduleInput{
		LeadID:         leadID,
		WalkInDateTime: req.WalkInDateTime,
		Note:           req.Note,
		Status:         req.WalkInStatus,
		Actor:          actor,
	})
	h.transition(pipeline.EventWalkInScheduled, err)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type rescheduleWalkInReq struct {
	RescheduledDateTime time.Time `json:"rescheduled_date_time"`
	Note                string    `json:"note"                  validate:"max=1000"`
}

func (h *WalkInHandler) Reschedule(c echo.Context) error {
	if _, ok, err := actorOf(c); !ok {
		return err
	}
	walkInID, ok, err := pathID(c, "walk_in_id")
	if !ok {
		return err
	}
	var req rescheduleWalkInReq
	if ok, err := bind(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Reschedule(c.Request().Context(), ucWalkin.RescheduleInput{
		WalkInID:    walkInID,
		NewDateTime: req.RescheduledDateTime,
		Note:        req.Note,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type walkInStatusReq struct {
	WalkInStatus string `json:"walk_in_status"`
}

func (h *WalkInHandler) UpdateStatus(c echo.Context) error {
	if _, ok, err := actorOf(c); !ok {
		return err
	}
	walkInID, ok, err := pathID(c, "walk_in_id")
	if !ok {
		return err
	}
	var req walkInStatusReq
	if ok, err := bind(c, &req); !ok {
		return err
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), ucWalkin.UpdateStatusInput{
		WalkInID: walkInID,
		Status:   req.WalkInStatus,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
