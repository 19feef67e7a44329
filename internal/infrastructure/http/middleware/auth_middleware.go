package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kina-health/kina/pkg/jwt"
)

const (
	// ClientContextKey is the echo context key for the authenticated
	// API client's claims.
	ClientContextKey = "client"
	// ClientIDContextKey is the echo context key for the client ID.
	ClientIDContextKey = "client_id"
)

// EchoAuth returns an Echo middleware that validates the bearer JWT and
// sets the client claims into the Echo context.
func EchoAuth(manager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			claims, err := manager.ValidateAccessToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(ClientContextKey, claims)
			c.Set(ClientIDContextKey, claims.ClientID)

			return next(c)
		}
	}
}

// GetClientID returns the authenticated client ID from the Echo context
func GetClientID(c echo.Context) (string, bool) {
	clientID, ok := c.Get(ClientIDContextKey).(string)
	return clientID, ok
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// Try cookie as fallback
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}

	return ""
}
