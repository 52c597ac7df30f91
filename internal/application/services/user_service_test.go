package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/apperrors"
	"taskboard/internal/application/command"
	"taskboard/internal/domain/entities"
	"taskboard/internal/infrastructure"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result := env.signup(t, "alice", "alice@example.com")
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, entities.RoleStandard, result.User.Role)

	// The issued token is a valid session for that user.
	claims, err := env.jwtService.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)

	// The plaintext never reaches the store.
	stored, err := env.userRepo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdef!1", stored.Password)
	assert.NoError(t, stored.CheckPassword("Abcdef!1"))
}

func TestSignupPasswordPolicy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.userService.Signup(ctx, &command.SignupCommand{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "abcdefgh",
		ConfirmPassword: "abcdefgh",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = env.userService.Signup(ctx, &command.SignupCommand{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "Abcdef!1",
		ConfirmPassword: "Abcdef!1",
	})
	assert.NoError(t, err)
}

func TestSignupMismatchedConfirmation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.userService.Signup(context.Background(), &command.SignupCommand{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "Abcdef!1",
		ConfirmPassword: "Abcdef!2",
	})
	require.Error(t, err)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Messages, "passwords do not match")
}

func TestSignupConflictsReportedPerField(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signup(t, "alice", "alice@example.com")

	// Taken username, fresh email: exactly one error, attributed to username.
	_, err := env.userService.Signup(ctx, &command.SignupCommand{
		Username:        "alice",
		Email:           "fresh@example.com",
		Password:        "Abcdef!1",
		ConfirmPassword: "Abcdef!1",
	})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	assert.Equal(t, []string{"username already exists"}, appErr.Messages)

	// Both taken: both reported at once.
	_, err = env.userService.Signup(ctx, &command.SignupCommand{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "Abcdef!1",
		ConfirmPassword: "Abcdef!1",
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{"username already exists", "email already exists"}, appErr.Messages)
}

func TestSignupSanitizesInput(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.userService.Signup(context.Background(), &command.SignupCommand{
		Username:        "  <b>alice</b> ",
		Email:           "alice@example.com",
		Password:        "Abcdef!1",
		ConfirmPassword: "Abcdef!1",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signup(t, "alice", "alice@example.com")

	result, err := env.userService.Login(ctx, &command.LoginCommand{Username: "alice", Password: "Abcdef!1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	// Wrong password and unknown user yield the same generic outcome.
	_, badPass := env.userService.Login(ctx, &command.LoginCommand{Username: "alice", Password: "Wrong!pw1"})
	_, badUser := env.userService.Login(ctx, &command.LoginCommand{Username: "nobody", Password: "Abcdef!1"})
	require.Error(t, badPass)
	require.Error(t, badUser)
	assert.True(t, apperrors.Is(badPass, apperrors.KindAuthentication))
	assert.Equal(t, badPass.Error(), badUser.Error())
}

func TestLoginThrottled(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signup(t, "alice", "alice@example.com")

	limiter := infrastructure.NewLoginLimiter(time.Minute, 2)
	defer limiter.Stop()
	svc := NewUserService(env.userRepo, env.taskRepo, env.jwtService, env.tokenStore, time.Hour, limiter)

	cmd := &command.LoginCommand{Username: "alice", Password: "Abcdef!1"}
	_, err := svc.Login(ctx, cmd)
	require.NoError(t, err)
	_, err = svc.Login(ctx, cmd)
	require.NoError(t, err)
	_, err = svc.Login(ctx, cmd)
	assert.Error(t, err)
}

func TestLogoutRevokesSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	result := env.signup(t, "alice", "alice@example.com")

	claims, err := env.jwtService.ParseToken(result.Token)
	require.NoError(t, err)

	require.NoError(t, env.userService.Logout(ctx, claims.ID))

	revoked, err := env.tokenStore.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestChangePasswordAccumulatesErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	result := env.signup(t, "alice", "alice@example.com")
	actor := principalFor(result)

	// Wrong current password with an otherwise valid new password still
	// fails, and the stored hash is untouched.
	err := env.userService.ChangePassword(ctx, actor, &command.ChangePasswordCommand{
		CurrentPassword:    "Wrong!pw1",
		NewPassword:        "Newpass!2",
		ConfirmNewPassword: "Newpass!2",
	})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Messages, "incorrect current password")

	_, err = env.userService.Login(ctx, &command.LoginCommand{Username: "alice", Password: "Abcdef!1"})
	assert.NoError(t, err, "password must be unchanged after a rejected change")

	// Several violations at once: wrong current, mismatch, weak new.
	err = env.userService.ChangePassword(ctx, actor, &command.ChangePasswordCommand{
		CurrentPassword:    "Wrong!pw1",
		NewPassword:        "weak",
		ConfirmNewPassword: "weaker",
	})
	require.ErrorAs(t, err, &appErr)
	assert.GreaterOrEqual(t, len(appErr.Messages), 3)

	// Empty fields are reported too.
	err = env.userService.ChangePassword(ctx, actor, &command.ChangePasswordCommand{})
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Messages, "all fields are required")
}

func TestChangePasswordSuccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	result := env.signup(t, "alice", "alice@example.com")

	err := env.userService.ChangePassword(ctx, principalFor(result), &command.ChangePasswordCommand{
		CurrentPassword:    "Abcdef!1",
		NewPassword:        "Newpass!2",
		ConfirmNewPassword: "Newpass!2",
	})
	require.NoError(t, err)

	_, err = env.userService.Login(ctx, &command.LoginCommand{Username: "alice", Password: "Abcdef!1"})
	assert.Error(t, err)
	_, err = env.userService.Login(ctx, &command.LoginCommand{Username: "alice", Password: "Newpass!2"})
	assert.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	result := env.signup(t, "alice", "alice@example.com")
	actor := principalFor(result)
	env.createTask(t, actor, "groceries", entities.TaskTypeSingle)

	// Wrong password is a credential failure and leaves everything in place.
	err := env.userService.DeleteAccount(ctx, actor, &command.DeleteAccountCommand{Password: "Wrong!pw1"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthentication))
	still, err := env.userRepo.FindByID(ctx, actor.UserID)
	require.NoError(t, err)
	require.NotNil(t, still)

	require.NoError(t, env.userService.DeleteAccount(ctx, actor, &command.DeleteAccountCommand{Password: "Abcdef!1"}))

	gone, err := env.userRepo.FindByID(ctx, actor.UserID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	tasks, err := env.taskRepo.FindByOwner(ctx, actor.UserID, nil)
	require.NoError(t, err)
	assert.Empty(t, tasks, "no task survives its owner")
}

func TestProfileCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	result := env.signup(t, "alice", "alice@example.com")
	actor := principalFor(result)

	done := env.createTask(t, actor, "groceries", entities.TaskTypeSingle)
	env.createTask(t, actor, "laundry", entities.TaskTypeSingle)
	env.createTask(t, actor, "dishes", entities.TaskTypeSingle)
	_, err := env.taskService.ToggleComplete(ctx, actor, done.ID)
	require.NoError(t, err)

	profile, err := env.userService.Profile(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, int64(3), profile.AllTasks)
	assert.Equal(t, int64(1), profile.CompletedTasks)
	assert.Equal(t, int64(2), profile.IncompleteTasks)
}

func TestAdminOperations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.signup(t, "alice", "alice@example.com")
	bob := env.signup(t, "bob", "bob@example.com")
	aliceActor := principalFor(alice)
	env.createTask(t, principalFor(bob), "b1", entities.TaskTypeSingle)

	admin := principalFor(alice)
	admin.Role = entities.RoleAdmin

	// A standard user is denied both admin operations.
	_, err := env.userService.AdminListUsers(ctx, aliceActor)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))
	err = env.userService.AdminDeleteUser(ctx, aliceActor, bob.User.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))

	users, err := env.userService.AdminListUsers(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	err = env.userService.AdminDeleteUser(ctx, admin, 9999)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	require.NoError(t, env.userService.AdminDeleteUser(ctx, admin, bob.User.ID))
	gone, err := env.userRepo.FindByID(ctx, bob.User.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	tasks, err := env.taskRepo.FindByOwner(ctx, bob.User.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
