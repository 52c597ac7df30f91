package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/internal/access"
	"taskboard/internal/application/command"
	"taskboard/internal/application/common"
	"taskboard/internal/application/interfaces"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
	"taskboard/internal/infrastructure"
	gormdb "taskboard/internal/infrastructure/db/gorm"
)

type testEnv struct {
	userService interfaces.UserService
	taskService interfaces.TaskService
	userRepo    repositories.UserRepository
	taskRepo    repositories.TaskRepository
	tokenStore  infrastructure.TokenStore
	jwtService  *infrastructure.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&gormdb.UserModel{}, &gormdb.TaskModel{}))

	userRepo := gormdb.NewUserRepository(db)
	taskRepo := gormdb.NewTaskRepository(db)
	tokenStore := infrastructure.NewMemoryTokenStore()
	jwtService := infrastructure.NewJWTService("test-secret", time.Hour)

	return &testEnv{
		userService: NewUserService(userRepo, taskRepo, jwtService, tokenStore, time.Hour, nil),
		taskService: NewTaskService(taskRepo),
		userRepo:    userRepo,
		taskRepo:    taskRepo,
		tokenStore:  tokenStore,
		jwtService:  jwtService,
	}
}

func (env *testEnv) signup(t *testing.T, username, email string) *common.AuthResult {
	t.Helper()

	result, err := env.userService.Signup(context.Background(), &command.SignupCommand{
		Username:        username,
		Email:           email,
		Password:        "Abcdef!1",
		ConfirmPassword: "Abcdef!1",
	})
	require.NoError(t, err)
	return result
}

func principalFor(result *common.AuthResult) access.Principal {
	return access.Principal{
		UserID:   result.User.ID,
		Username: result.User.Username,
		Role:     result.User.Role,
	}
}

func (env *testEnv) createTask(t *testing.T, actor access.Principal, title string, taskType entities.TaskType) *common.TaskResult {
	t.Helper()

	result, err := env.taskService.CreateTask(context.Background(), actor, &command.CreateTaskCommand{
		Title:    title,
		TaskType: string(taskType),
	})
	require.NoError(t, err)
	return result
}
