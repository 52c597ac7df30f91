package common

import (
	"time"

	"taskboard/internal/domain/entities"
)

type UserResult struct {
	ID        uint          `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Role      entities.Role `json:"role"`
}

type TaskResult struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       *time.Time `json:"end_at,omitempty"`
	Completed   bool       `json:"completed"`
	UserID      uint       `json:"user_id"`
	TaskType    string     `json:"task_type"`
}

// CalendarEvent is the calendar-widget shape: date-only strings for multi
// tasks, full RFC3339 for single ones.
type CalendarEvent struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Start    string  `json:"start"`
	End      *string `json:"end"`
	Editable bool    `json:"editable"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  *UserResult `json:"user"`
}

type ProfileResult struct {
	Username        string `json:"username"`
	AllTasks        int64  `json:"all_tasks"`
	CompletedTasks  int64  `json:"completed_tasks"`
	IncompleteTasks int64  `json:"incomplete_tasks"`
}
