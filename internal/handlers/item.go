package handlers

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/freshcart/grocery_backend/internal/models"
	"github.com/freshcart/grocery_backend/internal/mykafka"
	"github.com/freshcart/grocery_backend/internal/respond"
	"github.com/freshcart/grocery_backend/internal/util"
)

type ItemHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

type itemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  uint    `json:"category"`
	Price       float64 `json:"price"`
	Quantity    uint    `json:"quantity"`
}

func validateItem(req itemRequest, prefix string) []string {
	var errs []string
	if req.Name == "" {
		errs = append(errs, prefix+"name is required")
	}
	if req.CategoryID == 0 {
		errs = append(errs, prefix+"category is required")
	}
	if req.Price < 0 {
		errs = append(errs, prefix+"price must be >= 0")
	}
	return errs
}

// SaveItems stores a batch of catalog entries.
func (h *ItemHandler) SaveItems(c echo.Context) error {
	var req struct {
		Items []itemRequest `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		return respond.ValidationFailed(c, []string{"invalid request body"})
	}
	if len(req.Items) == 0 {
		return respond.NotFound(c)
	}

	var errs []string
	for i, it := range req.Items {
		errs = append(errs, validateItem(it, fmt.Sprintf("items[%d]: ", i))...)
	}
	if len(errs) > 0 {
		return respond.ValidationFailed(c, errs)
	}

	items := make([]models.Item, len(req.Items))
	for i, it := range req.Items {
		items[i] = models.Item{
			Name:        it.Name,
			Description: it.Description,
			CategoryID:  it.CategoryID,
			Price:       it.Price,
			Quantity:    it.Quantity,
		}
	}

	res := h.DB.Create(&items)
	if res.Error != nil || res.RowsAffected == 0 {
		return respond.WriteFailed(c, respond.MsgItemNotSaved)
	}

	for _, it := range items {
		publishEvent(c, h.Producer, "item_events", fmt.Sprint(it.ID), map[string]any{
			"type":   "item_created",
			"itemID": it.ID,
			"name":   it.Name,
		})
	}

	return respond.OK(c, respond.MsgItemSaved, items)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respond.ValidationFailed(c, []string{"id must be a positive integer"})
	}

	var item models.Item
	if err := h.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.NotFound(c)
		}
		return err
	}

	return respond.OK(c, respond.MsgDataFound, item)
}

func (h *ItemHandler) GetItems(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	var total int64
	if err := h.DB.Model(&models.Item{}).Count(&total).Error; err != nil {
		return err
	}

	var items []models.Item
	if err := h.DB.Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return respond.NotFound(c)
	}

	return respond.OK(c, respond.MsgDataFound, map[string]any{
		"items": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}

func (h *ItemHandler) GetItemsByCategory(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respond.ValidationFailed(c, []string{"id must be a positive integer"})
	}

	var items []models.Item
	if err := h.DB.Where("category_id = ?", id).Order("id ASC").Find(&items).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return respond.NotFound(c)
	}

	return respond.OK(c, respond.MsgDataFound, items)
}

// UpdateItem overwrites every item field. Zero affected rows is reported as a
// write failure, not as not-found: the update statement simply matched
// nothing.
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respond.ValidationFailed(c, []string{"id must be a positive integer"})
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return respond.ValidationFailed(c, []string{"invalid request body"})
	}
	if errs := validateItem(req, ""); len(errs) > 0 {
		return respond.ValidationFailed(c, errs)
	}

	res := h.DB.Model(&models.Item{}).Where("id = ?", id).Updates(map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"category_id": req.CategoryID,
		"price":       req.Price,
		"quantity":    req.Quantity,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return respond.WriteFailed(c, respond.MsgItemNotUpdated)
	}

	var item models.Item
	if err := h.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.NotFound(c)
		}
		return err
	}

	publishEvent(c, h.Producer, "item_events", fmt.Sprint(item.ID), map[string]any{
		"type":   "item_updated",
		"itemID": item.ID,
		"name":   item.Name,
	})

	return respond.OK(c, respond.MsgItemUpdated, item)
}

// UpdateInventory adjusts only the stocked quantity.
func (h *ItemHandler) UpdateInventory(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respond.ValidationFailed(c, []string{"id must be a positive integer"})
	}

	var req struct {
		Quantity *uint `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil || req.Quantity == nil {
		return respond.ValidationFailed(c, []string{"quantity is required"})
	}

	res := h.DB.Model(&models.Item{}).Where("id = ?", id).Update("quantity", *req.Quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return respond.WriteFailed(c, respond.MsgItemNotUpdated)
	}

	var item models.Item
	if err := h.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.NotFound(c)
		}
		return err
	}

	publishEvent(c, h.Producer, "item_events", fmt.Sprint(item.ID), map[string]any{
		"type":     "item_inventory_updated",
		"itemID":   item.ID,
		"quantity": item.Quantity,
	})

	return respond.OK(c, respond.MsgItemUpdated, item)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respond.ValidationFailed(c, []string{"id must be a positive integer"})
	}

	res := h.DB.Delete(&models.Item{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return respond.WriteFailed(c, respond.MsgItemNotDeleted)
	}

	publishEvent(c, h.Producer, "item_events", fmt.Sprint(id), map[string]any{
		"type":   "item_deleted",
		"itemID": id,
	})

	return respond.OK(c, respond.MsgItemDeleted, nil)
}
