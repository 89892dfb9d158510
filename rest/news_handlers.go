package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"unrot/di"
)

func registerNewsRoutes(e *echo.Echo, container *di.ApplicationComponents) {
	e.GET("/catchup/:date", handleCatchUp(container))

	news := e.Group("/news")
	news.GET("/categories", handleNewsCategories(container))
	news.GET("/:category", handleTodayNews(container))
	news.GET("/:category/:date", handleNews(container))
}

func handleNewsCategories(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, container.NewsUsecase.Categories())
	}
}

func handleTodayNews(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articles, err := container.NewsUsecase.FetchToday(c.Request().Context(), c.Param("category"))
		if err != nil {
			return handleError(c, err, "fetch_today_news")
		}
		return c.JSON(http.StatusOK, articles)
	}
}

func handleNews(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articles, err := container.NewsUsecase.FetchNews(c.Request().Context(), c.Param("category"), c.Param("date"))
		if err != nil {
			return handleError(c, err, "fetch_news")
		}
		return c.JSON(http.StatusOK, articles)
	}
}

func handleCatchUp(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articles, err := container.NewsUsecase.CatchUp(c.Request().Context(), c.Param("date"))
		if err != nil {
			return handleError(c, err, "catch_up")
		}
		return c.JSON(http.StatusOK, articles)
	}
}
