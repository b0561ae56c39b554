package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshcart/grocery_backend/internal/logging"
)

// Envelope is the uniform body returned by every endpoint.
type Envelope struct {
	Code    int    `json:"code"`
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func JSON(c echo.Context, code int, status bool, message string, data any) error {
	return c.JSON(code, Envelope{
		Code:    code,
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func OK(c echo.Context, message string, data any) error {
	return JSON(c, http.StatusOK, true, message, data)
}

// ValidationFailed carries the list of validation errors in the data field,
// mirroring the envelope used by every other outcome.
func ValidationFailed(c echo.Context, errs []string) error {
	return JSON(c, http.StatusForbidden, false, MsgValidationError, errs)
}

func NotFound(c echo.Context) error {
	return JSON(c, http.StatusNotFound, false, MsgNoDataFound, nil)
}

func WriteFailed(c echo.Context, message string) error {
	return JSON(c, http.StatusInternalServerError, false, message, nil)
}

// HTTPErrorHandler converts every error that escapes a handler into an
// envelope so that no request is ever left without a response. echo.HTTPError
// codes and messages are preserved; anything else becomes a generic 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := MsgInternalError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			message = s
		}
	}

	logging.FromContext(c.Request().Context()).Error("request_failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"status", code,
		"error", err,
	)

	if err := JSON(c, code, false, message, nil); err != nil {
		c.Logger().Errorf("error handler response failed: %v", err)
	}
}
