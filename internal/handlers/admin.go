package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/freshcart/grocery_backend/internal/hash"
	"github.com/freshcart/grocery_backend/internal/models"
	"github.com/freshcart/grocery_backend/internal/mykafka"
	"github.com/freshcart/grocery_backend/internal/respond"
	"github.com/freshcart/grocery_backend/internal/token"
)

type AdminHandler struct {
	DB       *gorm.DB
	Tokens   *token.Service
	Producer *mykafka.Producer
}

type adminRegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (h *AdminHandler) Register(c echo.Context) error {
	var req adminRegisterRequest
	if err := c.Bind(&req); err != nil {
		return respond.ValidationFailed(c, []string{"invalid request body"})
	}

	var errs []string
	if req.Username == "" {
		errs = append(errs, "username is required")
	}
	if req.Password == "" {
		errs = append(errs, "password is required")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		errs = append(errs, "a valid email is required")
	}
	if len(errs) > 0 {
		return respond.ValidationFailed(c, errs)
	}

	var existing models.Admin
	err := h.DB.Where("username = ?", req.Username).First(&existing).Error
	if err == nil {
		return respond.JSON(c, http.StatusForbidden, false, respond.MsgUserExists, nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
	}
	if err := h.DB.Create(&admin).Error; err != nil {
		return respond.WriteFailed(c, respond.MsgInternalError)
	}

	publishEvent(c, h.Producer, "user_events", fmt.Sprint(admin.ID), map[string]any{
		"type":     "admin_registered",
		"adminID":  admin.ID,
		"username": admin.Username,
	})

	return respond.OK(c, respond.MsgRegistered, admin)
}

// Login verifies admin credentials and issues a 1 hour admin token.
func (h *AdminHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return respond.ValidationFailed(c, []string{"invalid request body"})
	}
	if errs := validateCredentials(req); len(errs) > 0 {
		return respond.ValidationFailed(c, errs)
	}

	var admin models.Admin
	if err := h.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		return respond.JSON(c, http.StatusUnauthorized, false, respond.MsgBadLogin, nil)
	}
	if !hash.CheckPassword(admin.PasswordHash, req.Password) {
		return respond.JSON(c, http.StatusUnauthorized, false, respond.MsgBadLogin, nil)
	}

	accessToken, err := h.Tokens.GenerateAdminToken(admin.ID, admin.Username)
	if err != nil {
		return err
	}

	publishEvent(c, h.Producer, "user_events", fmt.Sprint(admin.ID), map[string]any{
		"type":     "admin_logged_in",
		"adminID":  admin.ID,
		"username": admin.Username,
	})

	return respond.OK(c, respond.MsgLoggedIn, map[string]any{
		"access_token": accessToken,
		"admin":        admin,
	})
}

// Profile returns the authenticated admin's account.
func (h *AdminHandler) Profile(c echo.Context) error {
	id, ok := currentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, respond.MsgNoToken)
	}

	var admin models.Admin
	if err := h.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.NotFound(c)
		}
		return err
	}

	return respond.OK(c, respond.MsgDataFound, admin)
}
