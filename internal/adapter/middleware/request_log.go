package middleware

import (
	"time"

	"leadcrm-backend/pkg/id"
	"leadcrm-backend/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger tags the request context with a request id and writes one line
// per request once the handler has finished.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			rid := req.Header.Get(HeaderRequestID)
			if rid == "" {
				rid = id.NewID32()
			}
			c.Response().Header().Set(HeaderRequestID, rid)
			ctx := log.WithRequestID(req.Context(), rid)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			level := zerolog.InfoLevel
			switch {
			case status >= 500:
				level = zerolog.ErrorLevel
			case status >= 400:
				level = zerolog.WarnLevel
			}
			ev := log.Event(ctx, level).
				Str("method", req.Method).
				Str("path", c.Path()).
				Int("status", status).
				Dur("latency", time.Since(start))
			if a, ok := ActorFrom(c); ok {
				ev = ev.Uint64("user_id", a.UserID).Str("actor_role", string(a.Role))
			}
			ev.Msg("request")
			return nil
		}
	}
}
