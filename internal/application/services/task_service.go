package services

import (
	"context"
	"time"

	"taskboard/internal/access"
	"taskboard/internal/apperrors"
	"taskboard/internal/application/command"
	"taskboard/internal/application/common"
	"taskboard/internal/application/interfaces"
	"taskboard/internal/application/mapper"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

const calendarDateLayout = "2006-01-02"

type TaskService struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) interfaces.TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, actor access.Principal, cmd *command.CreateTaskCommand) (*common.TaskResult, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.NotAuthorized()
	}
	if cmd.Title == "" {
		return nil, apperrors.Validation("title is required")
	}

	task := entities.NewTask(cmd.Title, cmd.Description, actor.UserID, entities.TaskType(cmd.TaskType))
	validatedTask, err := entities.NewValidatedTask(task)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	created, err := s.taskRepo.Create(ctx, validatedTask)
	if err != nil {
		return nil, err
	}
	return mapper.NewTaskResultFromEntity(created), nil
}

func (s *TaskService) GetTask(ctx context.Context, actor access.Principal, taskID uint) (*common.TaskResult, error) {
	task, err := s.ownedTask(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}
	return mapper.NewTaskResultFromEntity(task), nil
}

func (s *TaskService) EditTask(ctx context.Context, actor access.Principal, taskID uint, cmd *command.EditTaskCommand) (*common.TaskResult, error) {
	task, err := s.ownedTask(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != "" {
		task.Title = cmd.Title
	}
	task.Description = cmd.Description
	if cmd.TaskType != "" {
		task.Type = entities.TaskType(cmd.TaskType)
	}

	return s.saveTask(ctx, task)
}

func (s *TaskService) DeleteTask(ctx context.Context, actor access.Principal, taskID uint) error {
	task, err := s.ownedTask(ctx, actor, taskID)
	if err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, task.ID)
}

func (s *TaskService) ToggleComplete(ctx context.Context, actor access.Principal, taskID uint) (*common.TaskResult, error) {
	task, err := s.ownedTask(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	task.ToggleCompleted()
	return s.saveTask(ctx, task)
}

// Reposition applies a calendar drag/resize. Malformed instants are a
// ValidationError; the denial of a non-owner leaves the dates untouched.
func (s *TaskService) Reposition(ctx context.Context, actor access.Principal, taskID uint, cmd *command.RepositionTaskCommand) (*common.TaskResult, error) {
	start, err := parseCalendarInstant(cmd.Start)
	if err != nil {
		return nil, apperrors.Validation("malformed start date: " + cmd.Start)
	}
	end, err := parseCalendarInstant(cmd.End)
	if err != nil {
		return nil, apperrors.Validation("malformed end date: " + cmd.End)
	}

	task, err := s.ownedTask(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	task.Reposition(start, end)
	return s.saveTask(ctx, task)
}

func (s *TaskService) ListForOwner(ctx context.Context, actor access.Principal, completed *bool) ([]common.TaskResult, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.NotAuthorized()
	}

	tasks, err := s.taskRepo.FindByOwner(ctx, actor.UserID, completed)
	if err != nil {
		return nil, err
	}
	return mapper.NewTaskResults(tasks), nil
}

// CalendarEvents serializes the actor's tasks for the calendar view. Multi
// tasks emit date-only strings; single tasks emit full RFC3339 instants,
// substituting the start for a missing end.
func (s *TaskService) CalendarEvents(ctx context.Context, actor access.Principal) ([]common.CalendarEvent, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.NotAuthorized()
	}

	tasks, err := s.taskRepo.FindByOwner(ctx, actor.UserID, nil)
	if err != nil {
		return nil, err
	}

	events := make([]common.CalendarEvent, 0, len(tasks))
	for i := range tasks {
		events = append(events, serializeEvent(&tasks[i]))
	}
	return events, nil
}

func (s *TaskService) SearchByTitle(ctx context.Context, actor access.Principal, query string) ([]common.TaskResult, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.NotAuthorized()
	}

	tasks, err := s.taskRepo.SearchByTitle(ctx, actor.UserID, query)
	if err != nil {
		return nil, err
	}
	return mapper.NewTaskResults(tasks), nil
}

// ownedTask loads the task and resolves the owner check before any caller
// touches it, so a denial can never be followed by the mutation.
func (s *TaskService) ownedTask(ctx context.Context, actor access.Principal, taskID uint) (*entities.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.NotFound("task")
	}
	if !access.CanAccess(actor, task) {
		return nil, apperrors.NotAuthorized()
	}
	return task, nil
}

func (s *TaskService) saveTask(ctx context.Context, task *entities.Task) (*common.TaskResult, error) {
	validatedTask, err := entities.NewValidatedTask(task)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	updated, err := s.taskRepo.Update(ctx, validatedTask)
	if err != nil {
		return nil, err
	}
	return mapper.NewTaskResultFromEntity(updated), nil
}

func serializeEvent(task *entities.Task) common.CalendarEvent {
	event := common.CalendarEvent{
		ID:       task.ID,
		Title:    task.Title,
		Editable: true,
	}

	if task.Type == entities.TaskTypeMulti {
		event.Start = task.StartAt.Format(calendarDateLayout)
		if task.EndAt != nil {
			end := task.EndAt.Format(calendarDateLayout)
			event.End = &end
		}
		return event
	}

	event.Start = task.StartAt.Format(time.RFC3339)
	end := task.StartAt.Format(time.RFC3339)
	if task.EndAt != nil {
		end = task.EndAt.Format(time.RFC3339)
	}
	event.End = &end
	return event
}

// parseCalendarInstant accepts what the calendar widget sends: RFC3339,
// the same without offset, or a bare date.
func parseCalendarInstant(value string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", calendarDateLayout}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
