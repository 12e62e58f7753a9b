package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-cms/internal/auth"
	"github.com/daniilsolovey/blog-cms/internal/metrics"
)

const claimsKey = "claims"

// requireAuth rejects requests without a valid bearer token and stores its claims in the context.
func (h *Handler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
		}

		claims, err := h.tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			h.log.WarnContext(c.Request().Context(), "token rejected", "error", err, "path", c.Path())
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid or expired token"})
		}

		c.Set(claimsKey, claims)
		return next(c)
	}
}

// claimsFrom returns the claims stored by requireAuth, or nil on public routes.
func claimsFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsKey).(*auth.Claims)
	return claims
}

// loggingMiddleware writes one access log line and request metrics per request.
func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		duration := time.Since(start)
		req, res := c.Request(), c.Response()

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordRequest(req.Method, route, res.Status, duration.Seconds())

		h.log.InfoContext(req.Context(), "HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", res.Status,
			"duration_ms", duration.Milliseconds(),
			"remote_addr", c.RealIP(),
			"request_id", res.Header().Get(echo.HeaderXRequestID),
		)

		return nil
	}
}
