package http

import (
	"net/http"
	"strconv"

	"leadcrm-backend/internal/adapter/middleware"
	"leadcrm-backend/internal/domain/apperr"
	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/infrastructure/metrics"
	"leadcrm-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// base carries what every handler needs to answer consistently.
type base struct {
	log     *logger.Logger
	metrics *metrics.Metrics
}

func newBase(log *logger.Logger, m *metrics.Metrics) base {
	if log == nil {
		log = logger.Nop()
	}
	return base{log: log, metrics: m}
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindMissingField, apperr.KindInvalidField:
		return http.StatusBadRequest
	case apperr.KindInvalidEnum:
		return http.StatusUnprocessableEntity
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindInvalidTransition, apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail maps a usecase error onto the response. Internal causes are logged, never returned.
func (b base) fail(c echo.Context, err error) error {
	kind := apperr.KindOf(err)
	status := statusFor(kind)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		b.log.Error(c.Request().Context(), "request failed", err)
		msg = "internal error"
	}
	return c.JSON(status, ErrorResponse{Error: msg, Kind: string(kind)})
}

func (b base) transition(kind pipeline.EventKind, err error) {
	if b.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = string(apperr.KindOf(err))
	}
	b.metrics.RecordTransition(string(kind), outcome)
}

// bind decodes and validates the body, writing the error response itself.
// A false return means the response has been written.
func bind(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

func pathID(c echo.Context, name string) (uint64, bool, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + name + " path param"})
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " path param"})
	}
	return id, true, nil
}

func actorOf(c echo.Context) (pipeline.Actor, bool, error) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		return a, false, c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	return a, true, nil
}
