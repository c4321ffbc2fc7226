package rest

import (
	"net/http"

	"intmon/di"
	"intmon/middleware"
	"intmon/usecase/manage_feed_usecase"
	"intmon/usecase/register_feed_usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func registerFeedRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	feeds := v1.Group("/feeds")

	feeds.POST("", handleRegisterFeed(container))
	feeds.GET("", handleListFeeds(container))
	feeds.GET("/:id", handleGetFeed(container))
	feeds.PATCH("/:id", handleUpdateFeed(container))
	feeds.DELETE("/:id", handleDeleteFeed(container))
	feeds.POST("/:id/refresh", handleRefreshFeed(container))

	v1.POST("/refresh", handleRefreshScope(container))
}

func handleRegisterFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req registerFeedRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body")
		}

		ctx := c.Request().Context()
		input := register_feed_usecase.RegisterFeedInput{
			URL:              req.URL,
			Title:            req.Title,
			Description:      req.Description,
			IntegrationName:  req.IntegrationName,
			IntegrationAlias: req.IntegrationAlias,
			Scope:            middleware.ScopeFromContext(ctx),
		}

		feed, err := container.RegisterFeedUsecase.Execute(ctx, input)
		if err != nil {
			return handleError(c, err, "register_feed")
		}
		return c.JSON(http.StatusCreated, feed)
	}
}

func handleListFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		feeds, err := container.ManageFeedUsecase.List(ctx, middleware.ScopeFromContext(ctx))
		if err != nil {
			return handleError(c, err, "list_feeds")
		}
		return c.JSON(http.StatusOK, feeds)
	}
}

func handleGetFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid feed id")
		}

		ctx := c.Request().Context()
		feed, err := container.ManageFeedUsecase.Get(ctx, id, middleware.ScopeFromContext(ctx))
		if err != nil {
			return handleError(c, err, "get_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}

func handleUpdateFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid feed id")
		}

		var req updateFeedRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body")
		}

		ctx := c.Request().Context()
		input := manage_feed_usecase.UpdateFeedInput{
			URL:              req.URL,
			Title:            req.Title,
			Description:      req.Description,
			IntegrationName:  req.IntegrationName,
			IntegrationAlias: req.IntegrationAlias,
		}

		feed, err := container.ManageFeedUsecase.Update(ctx, id, middleware.ScopeFromContext(ctx), input)
		if err != nil {
			return handleError(c, err, "update_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}

func handleDeleteFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid feed id")
		}

		ctx := c.Request().Context()
		if err := container.ManageFeedUsecase.Delete(ctx, id, middleware.ScopeFromContext(ctx)); err != nil {
			return handleError(c, err, "delete_feed")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func handleRefreshFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid feed id")
		}

		ctx := c.Request().Context()
		result, err := container.RefreshFeedUsecase.RefreshSingle(ctx, id, middleware.ScopeFromContext(ctx))
		if err != nil {
			return handleError(c, err, "refresh_feed")
		}
		if result.Err != nil {
			return handleError(c, result.Err, "refresh_feed")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func handleRefreshScope(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		summary, err := container.RefreshFeedUsecase.RefreshScope(ctx, middleware.ScopeFromContext(ctx))
		if err != nil {
			return handleError(c, err, "refresh_scope")
		}
		return c.JSON(http.StatusOK, summary)
	}
}
