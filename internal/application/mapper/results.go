package mapper

import (
	"taskboard/internal/application/common"
	"taskboard/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		ID:        user.ID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
	}
}

func NewTaskResultFromEntity(task *entities.Task) *common.TaskResult {
	return &common.TaskResult{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		StartAt:     task.StartAt,
		EndAt:       task.EndAt,
		Completed:   task.Completed,
		UserID:      task.UserID,
		TaskType:    string(task.Type),
	}
}

func NewTaskResults(tasks []entities.Task) []common.TaskResult {
	results := make([]common.TaskResult, 0, len(tasks))
	for i := range tasks {
		results = append(results, *NewTaskResultFromEntity(&tasks[i]))
	}
	return results
}
