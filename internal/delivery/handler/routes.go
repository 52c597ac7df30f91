package handler

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Register wires every route. The auth group carries the burst limiter,
// everything else sits behind Authenticate, admin routes additionally
// behind RequireAdmin.
func (h *Handler) Register(e *echo.Echo, authLimiter *rate.Limiter) {
	auth := e.Group("/auth")
	if authLimiter != nil {
		auth.Use(RateLimit(authLimiter))
	}
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)

	api := e.Group("/api", h.Authenticate)
	api.POST("/auth/logout", h.Logout)

	api.GET("/profile", h.Profile)
	api.POST("/profile/password", h.ChangePassword)
	api.POST("/profile/delete", h.DeleteAccount)

	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks/search", h.SearchTasks)
	api.GET("/tasks/calendar", h.CalendarEvents)
	api.GET("/tasks/:id", h.GetTask)
	api.PUT("/tasks/:id", h.EditTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
	api.POST("/tasks/:id/toggle", h.ToggleComplete)
	api.POST("/tasks/:id/position", h.RepositionTask)

	admin := api.Group("/admin", h.RequireAdmin)
	admin.GET("/users", h.AdminListUsers)
	admin.DELETE("/users/:id", h.AdminDeleteUser)
}
