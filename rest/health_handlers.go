package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func handleHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
	}
}
