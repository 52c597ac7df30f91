package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taskboard/internal/apperrors"
	"taskboard/internal/application/command"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var cmd command.CreateTaskCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, apperrors.Validation("invalid input"))
	}

	result, err := h.taskService.CreateTask(c.Request().Context(), principalFrom(c), &cmd)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusCreated, result)
}

func (h *Handler) GetTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return sendError(c, err)
	}

	result, err := h.taskService.GetTask(c.Request().Context(), principalFrom(c), taskID)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusOK, result)
}

func (h *Handler) EditTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return sendError(c, err)
	}

	var cmd command.EditTaskCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, apperrors.Validation("invalid input"))
	}

	result, err := h.taskService.EditTask(c.Request().Context(), principalFrom(c), taskID, &cmd)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusOK, result)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return sendError(c, err)
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), principalFrom(c), taskID); err != nil {
		return sendError(c, err)
	}
	return sendMessage(c, http.StatusOK, "task deleted")
}

func (h *Handler) ToggleComplete(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return sendError(c, err)
	}

	result, err := h.taskService.ToggleComplete(c.Request().Context(), principalFrom(c), taskID)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusOK, result)
}

func (h *Handler) RepositionTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return sendError(c, err)
	}

	var cmd command.RepositionTaskCommand
	if err := c.Bind(&cmd); err != nil {
		return sendError(c, apperrors.Validation("invalid input"))
	}

	result, err := h.taskService.Reposition(c.Request().Context(), principalFrom(c), taskID, &cmd)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusOK, result)
}

func (h *Handler) ListTasks(c echo.Context) error {
	var completed *bool
	if raw := c.QueryParam("completed"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return sendError(c, apperrors.Validation("invalid completed filter"))
		}
		completed = &value
	}

	results, err := h.taskService.ListForOwner(c.Request().Context(), principalFrom(c), completed)
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusOK, results)
}

func (h *Handler) CalendarEvents(c echo.Context) error {
	events, err := h.taskService.CalendarEvents(c.Request().Context(), principalFrom(c))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusOK, events)
}

func (h *Handler) SearchTasks(c echo.Context) error {
	results, err := h.taskService.SearchByTitle(c.Request().Context(), principalFrom(c), c.QueryParam("q"))
	if err != nil {
		return sendError(c, err)
	}
	return sendSuccess(c, http.StatusOK, results)
}

func taskIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.Validation("invalid task id")
	}
	return uint(id), nil
}
