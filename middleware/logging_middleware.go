package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"unrot/utils/logger"
)

// LoggingMiddleware logs request start and completion. Health and metrics checks are skipped.
func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/health" || req.URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			ctx := req.Context()
			log := contextLogger.WithContext(ctx)

			log.InfoContext(ctx, "request started",
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", c.RealIP(),
			)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", c.Response().Size,
			}
			switch {
			case status >= 500:
				log.ErrorContext(ctx, "request completed", attrs...)
			case status >= 400:
				log.WarnContext(ctx, "request completed", attrs...)
			default:
				log.InfoContext(ctx, "request completed", attrs...)
			}

			return nil
		}
	}
}
