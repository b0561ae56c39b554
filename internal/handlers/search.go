package handlers

import (
	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/freshcart/grocery_backend/internal/respond"
	"github.com/freshcart/grocery_backend/internal/service/search"
	"github.com/freshcart/grocery_backend/internal/util"
)

type SearchHandler struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return respond.ValidationFailed(c, []string{"q is required"})
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	total, items, err := search.Search(c.Request().Context(), h.ES, h.Index, q, from, size)
	if err != nil {
		return err
	}
	if total == 0 {
		return respond.NotFound(c)
	}

	return respond.OK(c, respond.MsgDataFound, map[string]any{
		"total": total,
		"items": items,
	})
}
