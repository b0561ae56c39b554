package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/freshcart/grocery_backend/internal/handlers"
	"github.com/freshcart/grocery_backend/internal/middleware/auth"
)

type Deps struct {
	DB           *gorm.DB
	AuthMW       *auth.Middleware
	AuthHandler  *handlers.AuthHandler
	AdminHandler *handlers.AdminHandler
	ItemHandler  *handlers.ItemHandler
	OrderHandler *handlers.OrderHandler
	// SearchHandler is optional; the search route is only mounted when an
	// elasticsearch client is configured.
	SearchHandler *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/admin/register", d.AdminHandler.Register)
	v1.POST("/admin/login", d.AdminHandler.Login)

	items := v1.Group("/items", d.AuthMW.RequireAuth)
	items.GET("", d.ItemHandler.GetItems)
	if d.SearchHandler != nil {
		items.GET("/search", d.SearchHandler.Search)
	}
	items.GET("/category/:id", d.ItemHandler.GetItemsByCategory)
	items.GET("/:id", d.ItemHandler.GetItem)

	orders := v1.Group("/orders", d.AuthMW.RequireAuth)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.PATCH("/:id/status", d.OrderHandler.UpdateStatus)
	orders.DELETE("/:id", d.OrderHandler.CancelOrder)

	admin := v1.Group("/admin", d.AuthMW.RequireAuth, d.AuthMW.AdminOnly)
	admin.GET("/profile", d.AdminHandler.Profile)
	admin.POST("/items", d.ItemHandler.SaveItems)
	admin.PATCH("/items/:id", d.ItemHandler.UpdateItem)
	admin.PATCH("/items/:id/inventory", d.ItemHandler.UpdateInventory)
	admin.DELETE("/items/:id", d.ItemHandler.DeleteItem)
}
