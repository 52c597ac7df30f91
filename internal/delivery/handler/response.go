package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/apperrors"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Code    int         `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func sendSuccess(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, Response{
		Status: "success",
		Data:   data,
		Code:   code,
	})
}

func sendMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, Response{
		Status:  "success",
		Message: message,
		Code:    code,
	})
}

func sendError(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	messages := []string{"internal server error"}

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		messages = appErr.Messages
		switch appErr.Kind {
		case apperrors.KindValidation:
			code = http.StatusBadRequest
		case apperrors.KindConflict:
			code = http.StatusConflict
		case apperrors.KindAuthentication:
			code = http.StatusUnauthorized
		case apperrors.KindAuthorization:
			code = http.StatusForbidden
		case apperrors.KindNotFound:
			code = http.StatusNotFound
		}
	}

	return c.JSON(code, Response{
		Status: "error",
		Errors: messages,
		Code:   code,
	})
}
