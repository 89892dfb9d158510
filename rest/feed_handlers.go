package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"unrot/di"
)

type markViewedRequest struct {
	UserID string `json:"userId"`
	ItemID string `json:"itemId"`
}

type trackRepoRequest struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

type refreshResponse struct {
	Added int `json:"added"`
}

func registerFeedRoutes(e *echo.Echo, container *di.ApplicationComponents) {
	feed := e.Group("/feed")
	feed.GET("", handleReadFeed(container))
	feed.GET("/", handleReadFeed(container))
	feed.POST("/refresh", handleRefreshFeed(container))
	feed.POST("/viewed", handleMarkViewed(container))
	feed.GET("/repos", handleListRepos(container))
	feed.POST("/repos", handleTrackRepo(container))
	feed.DELETE("/repos/:owner/:repo", handleUntrackRepo(container))
}

func handleReadFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := container.FeedUsecase.ReadFeed(c.Request().Context(), c.QueryParam("userId"))
		if err != nil {
			return handleError(c, err, "read_feed")
		}
		return c.JSON(http.StatusOK, items)
	}
}

func handleRefreshFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		added, err := container.FeedUsecase.Refresh(c.Request().Context())
		if err != nil {
			return handleError(c, err, "refresh_feed")
		}
		return c.JSON(http.StatusOK, refreshResponse{Added: added})
	}
}

func handleMarkViewed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req markViewedRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body")
		}
		if err := container.FeedUsecase.MarkViewed(c.Request().Context(), req.UserID, req.ItemID); err != nil {
			return handleError(c, err, "mark_viewed")
		}
		return c.JSON(http.StatusOK, okResponse{OK: true})
	}
}

func handleListRepos(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		repos, err := container.FeedUsecase.ListTrackedRepos(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_tracked_repos")
		}
		return c.JSON(http.StatusOK, repos)
	}
}

func handleTrackRepo(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req trackRepoRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body")
		}
		if err := container.FeedUsecase.TrackRepo(c.Request().Context(), req.Owner, req.Repo); err != nil {
			return handleError(c, err, "track_repo")
		}
		return c.JSON(http.StatusOK, okResponse{OK: true})
	}
}

func handleUntrackRepo(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := container.FeedUsecase.UntrackRepo(c.Request().Context(), c.Param("owner"), c.Param("repo")); err != nil {
			return handleError(c, err, "untrack_repo")
		}
		return c.JSON(http.StatusOK, okResponse{OK: true})
	}
}
