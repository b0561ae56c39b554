package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/freshcart/grocery_backend/internal/models"
	"github.com/freshcart/grocery_backend/internal/mykafka"
	"github.com/freshcart/grocery_backend/internal/respond"
)

type OrderHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

type orderItemRequest struct {
	ItemID    uint    `json:"item_id"`
	Quantity  uint    `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type createOrderRequest struct {
	Items  []orderItemRequest `json:"items"`
	Status models.OrderStatus `json:"status"`
}

// CreateOrder stores a new order for the authenticated user. Status defaults
// to pending; any of the six enumerated values is accepted, anything else is
// a validation error.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, respond.MsgNoToken)
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return respond.ValidationFailed(c, []string{"invalid request body"})
	}

	var errs []string
	if len(req.Items) == 0 {
		errs = append(errs, "items are required")
	}
	for i, it := range req.Items {
		if it.ItemID == 0 {
			errs = append(errs, fmt.Sprintf("items[%d]: item_id is required", i))
		}
		if it.Quantity == 0 {
			errs = append(errs, fmt.Sprintf("items[%d]: quantity must be > 0", i))
		}
		if it.UnitPrice < 0 {
			errs = append(errs, fmt.Sprintf("items[%d]: unit_price must be >= 0", i))
		}
	}
	if req.Status == 0 {
		req.Status = models.OrderPending
	}
	if !req.Status.Valid() {
		errs = append(errs, fmt.Sprintf("status %d is not a known order status", req.Status))
	}
	if len(errs) > 0 {
		return respond.ValidationFailed(c, errs)
	}

	var total float64
	items := make([]models.OrderItem, len(req.Items))
	for i, it := range req.Items {
		lineTotal := float64(it.Quantity) * it.UnitPrice
		items[i] = models.OrderItem{
			ItemID:    it.ItemID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
		total += lineTotal
	}

	order := models.Order{
		UserID:    userID,
		Status:    req.Status,
		Total:     total,
		CreatedAt: time.Now().Unix(),
		Items:     items,
	}

	if err := h.DB.Create(&order).Error; err != nil {
		return respond.WriteFailed(c, respond.MsgOrderNotUpdated)
	}

	publishEvent(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":    "order_created",
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
	})

	return respond.OK(c, respond.MsgOrderSaved, order)
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, respond.MsgNoToken)
	}

	q := h.DB.Preload("Items").Order("id ASC")
	if !isAdmin(c) {
		q = q.Where("user_id = ?", userID)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return err
	}
	if len(orders) == 0 {
		return respond.NotFound(c)
	}

	return respond.OK(c, respond.MsgDataFound, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, respond.MsgNoToken)
	}

	id, okID := parseID(c)
	if !okID {
		return respond.ValidationFailed(c, []string{"id must be a positive integer"})
	}

	q := h.DB.Preload("Items").Where("id = ?", id)
	if !isAdmin(c) {
		q = q.Where("user_id = ?", userID)
	}

	var order models.Order
	if err := q.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.NotFound(c)
		}
		return err
	}

	return respond.OK(c, respond.MsgDataFound, order)
}

// UpdateStatus overwrites the order status. Transitions are client-driven:
// any enumerated status may replace any other.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, respond.MsgNoToken)
	}

	id, okID := parseID(c)
	if !okID {
		return respond.ValidationFailed(c, []string{"id must be a positive integer"})
	}

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return respond.ValidationFailed(c, []string{"invalid request body"})
	}
	if !req.Status.Valid() {
		return respond.ValidationFailed(c, []string{fmt.Sprintf("status %d is not a known order status", req.Status)})
	}

	q := h.DB.Model(&models.Order{}).Where("id = ?", id)
	if !isAdmin(c) {
		q = q.Where("user_id = ?", userID)
	}

	res := q.Update("status", req.Status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return respond.WriteFailed(c, respond.MsgOrderNotUpdated)
	}

	var order models.Order
	if err := h.DB.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.NotFound(c)
		}
		return err
	}

	publishEvent(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":    "order_status_updated",
		"orderID": order.ID,
		"status":  order.Status,
	})

	return respond.OK(c, respond.MsgOrderUpdated, order)
}

// CancelOrder marks the order cancelled; nothing is deleted.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, respond.MsgNoToken)
	}

	id, okID := parseID(c)
	if !okID {
		return respond.ValidationFailed(c, []string{"id must be a positive integer"})
	}

	q := h.DB.Model(&models.Order{}).Where("id = ?", id)
	if !isAdmin(c) {
		q = q.Where("user_id = ?", userID)
	}

	res := q.Update("status", models.OrderCancelled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return respond.WriteFailed(c, respond.MsgOrderNotUpdated)
	}

	publishEvent(c, h.Producer, "order_events", fmt.Sprint(id), map[string]any{
		"type":    "order_cancelled",
		"orderID": id,
	})

	return respond.OK(c, respond.MsgOrderUpdated, nil)
}
