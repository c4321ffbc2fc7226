package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"intmon/domain"
	"intmon/utils"

	"github.com/labstack/echo/v4"
)

// ValidationMiddleware rejects malformed request bodies before they
// reach a handler. Feed registration gets an SSRF guard on top: the
// server fetches whatever URL is registered, so localhost and private
// network targets are refused here.
func ValidationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := validateRoute(c); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func validateRoute(c echo.Context) error {
	path := c.Request().URL.Path
	method := c.Request().Method

	switch {
	case method == http.MethodPost && strings.HasSuffix(path, "/feeds"):
		return validateFeedRegistration(c)
	case method == http.MethodGet && strings.HasSuffix(path, "/items"):
		return validatePagination(c)
	default:
		return nil
	}
}

func validateFeedRegistration(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return validationFailed("failed to read request body")
	}
	// handlers re-read the body after validation
	c.Request().Body = io.NopCloser(bytes.NewReader(body))

	var requestData struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &requestData); err != nil {
		return validationFailed("invalid JSON format")
	}

	if requestData.URL == "" {
		return validationFailed("url is required")
	}

	if err := utils.ValidateExternalURL(requestData.URL); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return validationFailed(validationErr.Message)
		}
		return validationFailed("url is not allowed")
	}
	return nil
}

func validatePagination(c echo.Context) error {
	for _, name := range []string{"limit", "offset"} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		for _, r := range raw {
			if r < '0' || r > '9' {
				return validationFailed(name + " must be a non-negative integer")
			}
		}
	}
	return nil
}

func validationFailed(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, map[string]interface{}{
		"error":   "validation_failed",
		"message": message,
	})
}
