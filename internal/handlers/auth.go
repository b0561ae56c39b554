package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/freshcart/grocery_backend/internal/hash"
	"github.com/freshcart/grocery_backend/internal/models"
	"github.com/freshcart/grocery_backend/internal/mykafka"
	"github.com/freshcart/grocery_backend/internal/respond"
	"github.com/freshcart/grocery_backend/internal/token"
)

type AuthHandler struct {
	DB       *gorm.DB
	Tokens   *token.Service
	Producer *mykafka.Producer
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func validateCredentials(req credentialsRequest) []string {
	var errs []string
	if req.Username == "" {
		errs = append(errs, "username is required")
	}
	if req.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return respond.ValidationFailed(c, []string{"invalid request body"})
	}
	if errs := validateCredentials(req); len(errs) > 0 {
		return respond.ValidationFailed(c, errs)
	}

	var existing models.User
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

	user := models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         token.RoleUser,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return respond.WriteFailed(c, respond.MsgInternalError)
	}

	publishEvent(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	return respond.OK(c, respond.MsgRegistered, user)
}

// Login verifies credentials and issues a 24 hour user token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return respond.ValidationFailed(c, []string{"invalid request body"})
	}
	if errs := validateCredentials(req); len(errs) > 0 {
		return respond.ValidationFailed(c, errs)
	}

	var user models.User
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return respond.JSON(c, http.StatusUnauthorized, false, respond.MsgBadLogin, nil)
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return respond.JSON(c, http.StatusUnauthorized, false, respond.MsgBadLogin, nil)
	}

	accessToken, err := h.Tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return err
	}

	publishEvent(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":     "user_logged_in",
		"userID":   user.ID,
		"username": user.Username,
	})

	return respond.OK(c, respond.MsgLoggedIn, map[string]any{
		"access_token": accessToken,
		"user":         user,
	})
}
