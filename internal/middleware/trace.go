package middleware

import (
	"context"
	"time"

	"spectraSense/pkg/logger"
	"spectraSense/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey string

const TraceIDKey ctxKey = "trace_id"

func TraceIDFromContext(ctx context.Context) string {
	if v := ctx.Value(TraceIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// TraceID reuses the caller's X-Request-ID or generates one, echoes it back
// and stores it in the request context.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get(echo.HeaderXRequestID)
			if tid == "" {
				tid = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, tid)
			ctx := context.WithValue(c.Request().Context(), TraceIDKey, tid)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequestMetrics observes handler latency per route and logs each request.
func RequestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

			logger.Debug("request",
				"trace_id", TraceIDFromContext(c.Request().Context()),
				"method", c.Request().Method,
				"route", route,
				"status", c.Response().Status,
				"duration", elapsed,
			)

			return err
		}
	}
}
