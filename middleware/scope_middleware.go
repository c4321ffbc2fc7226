package middleware

import (
	"context"

	"intmon/domain"
	"intmon/utils/logger"

	"github.com/labstack/echo/v4"
)

type scopeContextKey string

const feedScopeKey scopeContextKey = "feed_scope"

// ScopeMiddleware extracts the caller's ownership scope from the
// X-User-ID / X-Group-ID headers. Session validation belongs to the
// identity service in front of this one; here the headers are taken as
// an opaque, already-authenticated identity. Handlers reject requests
// whose scope fails validation.
func ScopeMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scope := domain.FeedScope{
				UserID:  c.Request().Header.Get("X-User-ID"),
				GroupID: c.Request().Header.Get("X-Group-ID"),
			}

			ctx := context.WithValue(c.Request().Context(), feedScopeKey, scope)
			if scope.UserID != "" {
				ctx = context.WithValue(ctx, logger.UserIDKey, scope.UserID)
			}
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// ScopeFromContext returns the scope extracted by ScopeMiddleware. The
// zero scope (no owner) fails domain validation downstream.
func ScopeFromContext(ctx context.Context) domain.FeedScope {
	if scope, ok := ctx.Value(feedScopeKey).(domain.FeedScope); ok {
		return scope
	}
	return domain.FeedScope{}
}
