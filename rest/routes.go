package rest

import (
	"strings"

	"intmon/config"
	"intmon/di"
	middleware_custom "intmon/middleware"
	"intmon/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID middleware first
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery middleware early
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
	}))

	// 4. CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:80"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-User-ID", "X-Group-ID", "X-Requested-With"},
		MaxAge:       86400,
	}))

	// 5. Request timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health")
		},
	}))

	// 6. Scope extraction - X-User-ID / X-Group-ID into request context
	e.Use(middleware_custom.ScopeMiddleware())

	// 7. Validation middleware - body shape and SSRF guard
	e.Use(middleware_custom.ValidationMiddleware())

	// 8. Logging middleware
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	// 9. Compression middleware last
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health")
		},
	}))

	v1 := e.Group("/v1")

	v1.GET("/health", handleHealth())
	registerFeedRoutes(v1, container)
	registerItemRoutes(v1, container)
}
