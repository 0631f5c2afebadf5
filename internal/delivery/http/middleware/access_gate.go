package middleware

import (
	"crypto/subtle"
	"strings"

	"caftan/config"
	"caftan/internal/delivery/http/response"
	"caftan/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AccessGate guards content-store writes exposed over HTTP. A request
// passes with a valid operator session token, or with a bearer token
// that exactly matches the configured shared secret. With no shared
// secret configured, only sessions pass.
type AccessGate struct {
	sessions     service.SessionVerifier
	sharedSecret string
}

// NewAccessGate creates the gate from configuration.
func NewAccessGate(sessions service.SessionVerifier, cfg *config.Config) *AccessGate {
	var sharedSecret string
	if cfg.Session != nil {
		sharedSecret = cfg.Session.SharedSecret
	}

	return &AccessGate{
		sessions:     sessions,
		sharedSecret: sharedSecret,
	}
}

// Authorize is the middleware function applied to gated routes.
func (g *AccessGate) Authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		// Session first, shared secret second; either one suffices.
		if subject, err := g.sessions.VerifySession(token); err == nil {
			c.Set("operator", subject)

			return next(c)
		}

		if g.sharedSecret != "" &&
			subtle.ConstantTimeCompare([]byte(token), []byte(g.sharedSecret)) == 1 {
			return next(c)
		}

		return response.Unauthorized(c, "UNAUTHORIZED", "Missing or invalid credentials")
	}
}
