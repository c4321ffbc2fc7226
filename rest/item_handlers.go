package rest

import (
	"net/http"
	"strconv"

	"intmon/di"
	"intmon/middleware"

	"github.com/labstack/echo/v4"
)

func registerItemRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/items", handleListItems(container))
}

func handleListItems(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := parseIntQuery(c, "limit", 0)
		offset := parseIntQuery(c, "offset", 0)

		ctx := c.Request().Context()
		items, err := container.FetchItemsUsecase.Execute(ctx, middleware.ScopeFromContext(ctx), limit, offset)
		if err != nil {
			return handleError(c, err, "list_items")
		}
		return c.JSON(http.StatusOK, items)
	}
}

func parseIntQuery(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
