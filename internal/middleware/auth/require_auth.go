package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/freshcart/grocery_backend/internal/logging"
	"github.com/freshcart/grocery_backend/internal/respond"
	"github.com/freshcart/grocery_backend/internal/token"
)

type Middleware struct {
	Tokens *token.Service
}

// RequireAuth verifies the bearer token on the Authorization header. A
// missing token rejects with 401, a bad one with 403; in both cases the
// downstream handler never runs. Verified claims are attached to the echo
// context under "claims", with "userID" and "role" set separately for
// convenience.
func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return respond.JSON(c, http.StatusUnauthorized, false, respond.MsgNoToken, nil)
		}

		claims, err := m.Tokens.Verify(parts[1])
		if err != nil {
			logging.FromContext(c.Request().Context()).Warn("token_rejected", "error", err)
			return respond.JSON(c, http.StatusForbidden, false, respond.MsgInvalidToken, nil)
		}

		c.Set("claims", claims)
		if sub, ok := claims["sub"].(float64); ok {
			c.Set("userID", uint(sub))
		}
		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}

		return next(c)
	}
}
