package rest

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"unrot/config"
	"unrot/di"
	middleware_custom "unrot/middleware"
	"unrot/utils/logger"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())
	e.Use(otelecho.Middleware(cfg.OTel.ServiceName))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware_custom.RequestIDHeader},
	}))
	if cfg.Server.WriteTimeout > 0 {
		e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: cfg.Server.WriteTimeout,
		}))
	}
	e.Use(middleware_custom.LoggingMiddleware(logger.Base()))

	e.GET("/health", healthHandler(container))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	registerNewsRoutes(e, container)
	registerGitHubRoutes(e, container)
	registerFeedRoutes(e, container)
	registerCatalogRoutes(e, container)
}
