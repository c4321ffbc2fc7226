package rest

import (
	"context"
	stderrors "errors"
	"net/http"

	"intmon/domain"
	"intmon/utils/errors"
	"intmon/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError maps the domain error taxonomy onto HTTP responses:
// caller mistakes 400, unreachable or malformed upstreams 502, store
// failures 500, invisible rows 404, duplicate registrations 409,
// rate-limited fetches 429, upstream deadline overruns 504.
func handleError(c echo.Context, err error, operation string) error {
	appErr := mapDomainError(err)
	errors.LogError(logger.Logger, appErr, operation)

	status := appErr.HTTPStatusCode()
	if stderrors.Is(err, domain.ErrFeedAlreadyExists) {
		status = http.StatusConflict
	}

	return c.JSON(status, appErr.ToHTTPResponse())
}

func handleValidationError(c echo.Context, message string) error {
	appErr := errors.ValidationError(message, nil)
	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

func mapDomainError(err error) *errors.AppError {
	if stderrors.Is(err, domain.ErrFeedNotFound) {
		return errors.NotFoundError("feed source not found", nil)
	}
	if stderrors.Is(err, domain.ErrFeedAlreadyExists) {
		return errors.ValidationError("feed source already exists for this scope", nil)
	}
	if stderrors.Is(err, domain.ErrScopeMissing) || stderrors.Is(err, domain.ErrScopeAmbiguous) {
		return errors.ValidationError(err.Error(), nil)
	}

	var validationErr *domain.ValidationError
	if stderrors.As(err, &validationErr) {
		return errors.ValidationError(validationErr.Message, map[string]interface{}{
			"field": validationErr.Field,
		})
	}

	if stderrors.Is(err, domain.ErrRateLimited) {
		return errors.RateLimitError("upstream fetch rate limited", err, nil)
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.TimeoutError("upstream fetch timed out", err, nil)
	}

	var networkErr *domain.NetworkError
	if stderrors.As(err, &networkErr) {
		return errors.ExternalAPIError("upstream feed unreachable", err, map[string]interface{}{
			"url": networkErr.URL,
		})
	}

	var parseErr *domain.ParseError
	if stderrors.As(err, &parseErr) {
		return errors.ExternalAPIError("upstream feed document malformed", err, map[string]interface{}{
			"url": parseErr.URL,
		})
	}

	var persistenceErr *domain.PersistenceError
	if stderrors.As(err, &persistenceErr) {
		return errors.DatabaseError("store operation failed", err, map[string]interface{}{
			"op": persistenceErr.Op,
		})
	}

	return errors.UnknownError("internal server error", err, nil)
}
