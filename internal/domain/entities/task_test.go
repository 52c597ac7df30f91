package entities

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTaskDefaults(t *testing.T) {
	task := NewTask("groceries", "milk and eggs", 3, "")

	assert.Equal(t, TaskTypeSingle, task.Type)
	assert.Equal(t, uint(3), task.UserID)
	assert.False(t, task.Completed)
	assert.False(t, task.Expired)
	assert.Nil(t, task.EndAt)
	assert.WithinDuration(t, time.Now(), task.StartAt, time.Second)
}

func TestValidatedTask(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
	}{
		{"valid", func(task *Task) {}, false},
		{"empty title", func(task *Task) { task.Title = "" }, true},
		{"title too long", func(task *Task) { task.Title = strings.Repeat("x", 11) }, true},
		{"title at limit", func(task *Task) { task.Title = strings.Repeat("x", 10) }, false},
		{"multibyte title at limit", func(task *Task) { task.Title = strings.Repeat("ж", 10) }, false},
		{"multibyte title too long", func(task *Task) { task.Title = strings.Repeat("ж", 11) }, true},
		{"multibyte description at limit", func(task *Task) { task.Description = strings.Repeat("語", 200) }, false},
		{"description too long", func(task *Task) { task.Description = strings.Repeat("x", 201) }, true},
		{"no owner", func(task *Task) { task.UserID = 0 }, true},
		{"bogus type", func(task *Task) { task.Type = "weekly" }, true},
		{"multi type", func(task *Task) { task.Type = TaskTypeMulti }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask("todo", "", 1, TaskTypeSingle)
			tt.mutate(task)

			_, err := NewValidatedTask(task)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToggleCompletedIsIdempotentOverTwoCalls(t *testing.T) {
	task := NewTask("todo", "", 1, TaskTypeSingle)

	task.ToggleCompleted()
	assert.True(t, task.Completed)
	task.ToggleCompleted()
	assert.False(t, task.Completed)
}

func TestReposition(t *testing.T) {
	task := NewTask("todo", "", 1, TaskTypeSingle)
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	// No ordering check: end before start is accepted as-is.
	task.Reposition(start, end)
	assert.Equal(t, start, task.StartAt)
	assert.Equal(t, end, *task.EndAt)
}
