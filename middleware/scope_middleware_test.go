package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"intmon/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		headers   map[string]string
		wantScope domain.FeedScope
	}{
		{
			name:      "user header",
			headers:   map[string]string{"X-User-ID": "u1"},
			wantScope: domain.FeedScope{UserID: "u1"},
		},
		{
			name:      "group header",
			headers:   map[string]string{"X-Group-ID": "g1"},
			wantScope: domain.FeedScope{GroupID: "g1"},
		},
		{
			name:      "no headers",
			headers:   nil,
			wantScope: domain.FeedScope{},
		},
		{
			name:      "both headers pass through for downstream validation",
			headers:   map[string]string{"X-User-ID": "u1", "X-Group-ID": "g1"},
			wantScope: domain.FeedScope{UserID: "u1", GroupID: "g1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/feeds", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotScope domain.FeedScope
			handler := ScopeMiddleware()(func(c echo.Context) error {
				gotScope = ScopeFromContext(c.Request().Context())
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantScope, gotScope)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/feeds", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestIDMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddleware_PreservesIncomingID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/feeds", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestIDMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}
