package http

import (
	"net/http"
	"time"

	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/infrastructure/metrics"
	ucActivity "leadcrm-backend/internal/usecase/activity"
	"leadcrm-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type ActivityHandler struct {
	base
	uc *ucActivity.Usecase
}

func NewActivityHandler(uc *ucActivity.Usecase, log *logger.Logger, m *metrics.Metrics) *ActivityHandler {
	return &ActivityHandler{base: newBase(log, m), uc: uc}
}

type activityReq struct {
	ActivityStatus string     `json:"activity_status"`
	Description    string     `json:"description"     validate:"max=2000"`
	DocsCollected  bool       `json:"docs_collected"`
	FollowUp       *time.Time `json:"follow_up"`
}

func (h *ActivityHandler) Add(c echo.Context) error {
	actor, ok, err := actorOf(c)
	if !ok {
		return err
	}
	leadID, ok, err := pathID(c, "lead_id")
	if !ok {
		return err
	}
	var req activityReq
	if ok, err := bind(c, &req); !ok {
		return err
	}

	dto, err := h.uc.Add(c.Request().Context(), ucActivity.AddInput{
		LeadID:         leadID,
		ActivityStatus: req.ActivityStatus,
		Description:    req.Description,
		DocsCollected:  req.DocsCollected,
		FollowUp:       req.FollowUp,
		Actor:          actor,
	})
	h.transition(pipeline.EventActivityLogged, err)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type taskStatusReq struct {
	TaskStatus string `json:"task_status"`
}

func (h *ActivityHandler) UpdateTaskStatus(c echo.Context) error {
	if _, ok, err := actorOf(c); !ok {
		return err
	}
	activityID, ok, err := pathID(c, "activity_id")
	if !ok {
		return err
	}
	var req taskStatusReq
	if ok, err := bind(c, &req); !ok {
		return err
	}
	dto, err := h.uc.UpdateTaskStatus(c.Request().Context(), ucActivity.UpdateTaskStatusInput{
		ActivityID: activityID,
		TaskStatus: req.TaskStatus,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
