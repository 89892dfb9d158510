package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"unrot/di"
)

func registerGitHubRoutes(e *echo.Echo, container *di.ApplicationComponents) {
	e.GET("/github/repos/:owner/:repo/pulls", handleListPullRequests(container))
}

func handleListPullRequests(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		prs, err := container.PullRequestUsecase.ListPullRequests(c.Request().Context(), c.Param("owner"), c.Param("repo"))
		if err != nil {
			return handleError(c, err, "list_pull_requests")
		}
		return c.JSON(http.StatusOK, prs)
	}
}
