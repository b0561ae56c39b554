package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshcart/grocery_backend/internal/respond"
	"github.com/freshcart/grocery_backend/internal/token"
)

// AdminOnly must run after RequireAuth. Any principal whose role claim is not
// "admin" is rejected with 403.
func (m *Middleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get("role").(string)
		if !ok || role != token.RoleAdmin {
			return respond.JSON(c, http.StatusForbidden, false, respond.MsgAdminOnly, nil)
		}
		return next(c)
	}
}
