package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"unrot/di"
	"unrot/utils/logger"
)

type healthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

func healthHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := container.FeedStore.Ping(ctx); err != nil {
			logger.FromContext(ctx).WarnContext(ctx, "health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "degraded", Store: "unavailable"})
		}
		return c.JSON(http.StatusOK, healthResponse{Status: "ok", Store: "ok"})
	}
}
