package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taskboard/internal/apperrors"
	"taskboard/internal/application/command"
	"taskboard/internal/application/interfaces"
	"taskboard/internal/infrastructure"
)

type Handler struct {
	userService interfaces.UserService
	taskService interfaces.TaskService
	jwtService  *infrastructure.JWTService
	tokenStore  infrastructure.TokenStore
}

func NewHandler(
	userService interfaces.UserService,
	taskService interfaces.TaskService,
	jwtService *infrastructure.JWTService,
	tokenStore infrastructure.TokenStore,
) *Handler {
	return &Handler{
		userService: userService,
		taskService: taskService,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
	}
}

func (h *Handler) Signup(c echo.Context) error {
	var cmd command.SignupCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, apperrors.Validation("invalid input"))
	}

	result, err := h.userService.Signup(c.Request().Context(), &cmd)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusCreated, result)
}

func (h *Handler) Login(c echo.Context) error {
	var cmd command.LoginCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, apperrors.Validation("invalid input"))
	}

	result, err := h.userService.Login(c.Request().Context(), &cmd)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusOK, result)
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.userService.Logout(c.Request().Context(), jtiFrom(c)); err != nil {
		return sendError(c, err)
	}
	return sendMessage(c, http.StatusOK, "logged out")
}

func (h *Handler) ChangePassword(c echo.Context) error {
	var cmd command.ChangePasswordCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, apperrors.Validation("invalid input"))
	}

	if err := h.userService.ChangePassword(c.Request().Context(), principalFrom(c), &cmd); err != nil {
		return sendError(c, err)
	}
	return sendMessage(c, http.StatusOK, "your password has been updated successfully")
}

func (h *Handler) DeleteAccount(c echo.Context) error {
	var cmd command.DeleteAccountCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, apperrors.Validation("invalid input"))
	}

	ctx := c.Request().Context()
	if err := h.userService.DeleteAccount(ctx, principalFrom(c), &cmd); err != nil {
		return sendError(c, err)
	}
	// The session dies with the account.
	if err := h.userService.Logout(ctx, jtiFrom(c)); err != nil {
		return sendError(c, err)
	}
	return sendMessage(c, http.StatusOK, "your account has been successfully deleted")
}

func (h *Handler) Profile(c echo.Context) error {
	result, err := h.userService.Profile(c.Request().Context(), principalFrom(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusOK, result)
}

func (h *Handler) AdminListUsers(c echo.Context) error {
	users, err := h.userService.AdminListUsers(c.Request().Context(), principalFrom(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusOK, users)
}

func (h *Handler) AdminDeleteUser(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return sendError(c, apperrors.Validation("invalid user id"))
	}

	if err := h.userService.AdminDeleteUser(c.Request().Context(), principalFrom(c), uint(targetID)); err != nil {
		return sendError(c, err)
	}
	return sendMessage(c, http.StatusOK, "user deleted")
}
