package entities

import (
	"errors"
	"time"
	"unicode/utf8"
)

type TaskType string

const (
	TaskTypeSingle TaskType = "single"
	TaskTypeMulti  TaskType = "multi"
)

const (
	MaxTitleLen       = 10
	MaxDescriptionLen = 200
)

// Task is a unit of work owned by exactly one user. StartAt doubles as the
// creation instant until a calendar drag repositions it. Expired is
// persisted but never set by any operation; it is reserved.
type Task struct {
	ID          uint
	Title       string
	Description string
	StartAt     time.Time
	EndAt       *time.Time
	Completed   bool
	Expired     bool
	UserID      uint
	Type        TaskType
}

func NewTask(title, description string, ownerID uint, taskType TaskType) *Task {
	if taskType == "" {
		taskType = TaskTypeSingle
	}
	return &Task{
		Title:       title,
		Description: description,
		StartAt:     time.Now(),
		UserID:      ownerID,
		Type:        taskType,
	}
}

func (t *Task) validate() error {
	if t.Title == "" {
		return errors.New("title must not be empty")
	}
	// Bounds are character counts, not bytes; a multibyte title still gets
	// the full budget.
	if utf8.RuneCountInString(t.Title) > MaxTitleLen {
		return errors.New("title must be at most 10 characters")
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLen {
		return errors.New("description must be at most 200 characters")
	}
	if t.UserID == 0 {
		return errors.New("task must have an owner")
	}
	if t.Type != TaskTypeSingle && t.Type != TaskTypeMulti {
		return errors.New("task type must be single or multi")
	}
	return nil
}

func (t *Task) ToggleCompleted() {
	t.Completed = !t.Completed
}

// Reposition overwrites both instants unconditionally; the calendar widget
// is trusted on ordering, there is no end >= start check.
func (t *Task) Reposition(start time.Time, end time.Time) {
	t.StartAt = start
	t.EndAt = &end
}
