package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	taskModel := r.mapToModel(task.GetTask())

	if err := r.db.WithContext(ctx).Create(taskModel).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, taskModel.ID)
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*entities.Task, error) {
	var taskModel TaskModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&taskModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&taskModel), nil
}

func (r *TaskRepository) FindByOwner(ctx context.Context, ownerID uint, completed *bool) ([]entities.Task, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if completed != nil {
		query = query.Where("completed = ?", *completed)
	}

	var taskModels []TaskModel
	if err := query.Order("id").Find(&taskModels).Error; err != nil {
		return nil, err
	}
	return r.mapAll(taskModels), nil
}

func (r *TaskRepository) SearchByTitle(ctx context.Context, ownerID uint, query string) ([]entities.Task, error) {
	var taskModels []TaskModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND title LIKE ?", ownerID, "%"+query+"%").
		Order("id").
		Find(&taskModels).Error
	if err != nil {
		return nil, err
	}
	return r.mapAll(taskModels), nil
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	taskModel := r.mapToModel(task.GetTask())

	// Save with Select so false booleans and nil end dates are written too.
	err := r.db.WithContext(ctx).Model(&TaskModel{ID: taskModel.ID}).
		Select("Title", "Description", "StartAt", "EndAt", "Completed", "Expired", "TaskType").
		Updates(taskModel).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, taskModel.ID)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&TaskModel{}, "id = ?", id).Error
}

func (r *TaskRepository) DeleteByOwner(ctx context.Context, ownerID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", ownerID).Delete(&TaskModel{}).Error
}

func (r *TaskRepository) CountByOwner(ctx context.Context, ownerID uint, completed *bool) (int64, error) {
	query := r.db.WithContext(ctx).Model(&TaskModel{}).Where("user_id = ?", ownerID)
	if completed != nil {
		query = query.Where("completed = ?", *completed)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TaskRepository) mapToModel(task *entities.Task) *TaskModel {
	return &TaskModel{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		StartAt:     task.StartAt,
		EndAt:       task.EndAt,
		Completed:   task.Completed,
		Expired:     task.Expired,
		UserID:      task.UserID,
		TaskType:    string(task.Type),
	}
}

func (r *TaskRepository) mapToEntity(taskModel *TaskModel) *entities.Task {
	return &entities.Task{
		ID:          taskModel.ID,
		Title:       taskModel.Title,
		Description: taskModel.Description,
		StartAt:     taskModel.StartAt,
		EndAt:       taskModel.EndAt,
		Completed:   taskModel.Completed,
		Expired:     taskModel.Expired,
		UserID:      taskModel.UserID,
		Type:        entities.TaskType(taskModel.TaskType),
	}
}

func (r *TaskRepository) mapAll(taskModels []TaskModel) []entities.Task {
	tasks := make([]entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, *r.mapToEntity(&taskModels[i]))
	}
	return tasks
}
