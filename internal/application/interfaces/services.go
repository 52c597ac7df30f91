package interfaces

import (
	"context"

	"taskboard/internal/access"
	"taskboard/internal/application/command"
	"taskboard/internal/application/common"
)

type UserService interface {
	Signup(ctx context.Context, cmd *command.SignupCommand) (*common.AuthResult, error)
	Login(ctx context.Context, cmd *command.LoginCommand) (*common.AuthResult, error)
	Logout(ctx context.Context, jti string) error
	ChangePassword(ctx context.Context, actor access.Principal, cmd *command.ChangePasswordCommand) error
	DeleteAccount(ctx context.Context, actor access.Principal, cmd *command.DeleteAccountCommand) error
	Profile(ctx context.Context, actor access.Principal) (*common.ProfileResult, error)
	AdminListUsers(ctx context.Context, actor access.Principal) ([]common.UserResult, error)
	AdminDeleteUser(ctx context.Context, actor access.Principal, targetID uint) error
}

type TaskService interface {
	CreateTask(ctx context.Context, actor access.Principal, cmd *command.CreateTaskCommand) (*common.TaskResult, error)
	GetTask(ctx context.Context, actor access.Principal, taskID uint) (*common.TaskResult, error)
	EditTask(ctx context.Context, actor access.Principal, taskID uint, cmd *command.EditTaskCommand) (*common.TaskResult, error)
	DeleteTask(ctx context.Context, actor access.Principal, taskID uint) error
	ToggleComplete(ctx context.Context, actor access.Principal, taskID uint) (*common.TaskResult, error)
	Reposition(ctx context.Context, actor access.Principal, taskID uint, cmd *command.RepositionTaskCommand) (*common.TaskResult, error)
	ListForOwner(ctx context.Context, actor access.Principal, completed *bool) ([]common.TaskResult, error)
	CalendarEvents(ctx context.Context, actor access.Principal) ([]common.CalendarEvent, error)
	SearchByTitle(ctx context.Context, actor access.Principal, query string) ([]common.TaskResult, error)
}
