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
	"taskboard/internal/infrastructure"
	"taskboard/internal/validation"
)

type UserService struct {
	userRepo     repositories.UserRepository
	taskRepo     repositories.TaskRepository
	jwtService   *infrastructure.JWTService
	tokenStore   infrastructure.TokenStore
	tokenTTL     time.Duration
	loginLimiter *infrastructure.LoginLimiter
}

func NewUserService(
	userRepo repositories.UserRepository,
	taskRepo repositories.TaskRepository,
	jwtService *infrastructure.JWTService,
	tokenStore infrastructure.TokenStore,
	tokenTTL time.Duration,
	loginLimiter *infrastructure.LoginLimiter,
) interfaces.UserService {
	return &UserService{
		userRepo:     userRepo,
		taskRepo:     taskRepo,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
		tokenTTL:     tokenTTL,
		loginLimiter: loginLimiter,
	}
}

func (s *UserService) Signup(ctx context.Context, cmd *command.SignupCommand) (*common.AuthResult, error) {
	username := validation.Clean(cmd.Username)
	email := validation.Clean(cmd.Email)

	var errs []string
	if username == "" {
		errs = append(errs, "username is required")
	}
	if email == "" {
		errs = append(errs, "email is required")
	}
	errs = append(errs, validation.PasswordErrors(cmd.Password)...)
	if cmd.Password != cmd.ConfirmPassword {
		errs = append(errs, "passwords do not match")
	}
	if len(errs) > 0 {
		return nil, apperrors.Validation(errs...)
	}

	// Both conflicts are reported independently; a taken username and a
	// taken email can fail at once.
	var conflicts []string
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		conflicts = append(conflicts, "username already exists")
	}

	existing, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		conflicts = append(conflicts, "email already exists")
	}
	if len(conflicts) > 0 {
		return nil, apperrors.Conflict(conflicts...)
	}

	newUser := entities.NewUser(username, email, cmd.Password)
	if err := newUser.HashPassword(); err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(createdUser)
	if err != nil {
		return nil, err
	}

	return &common.AuthResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) Login(ctx context.Context, cmd *command.LoginCommand) (*common.AuthResult, error) {
	if s.loginLimiter != nil && !s.loginLimiter.Allow(cmd.Username) {
		return nil, apperrors.Validation("too many login attempts, please try again later")
	}

	user, err := s.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.InvalidCredentials()
	}

	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &common.AuthResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) Logout(ctx context.Context, jti string) error {
	return s.tokenStore.Revoke(ctx, jti, s.tokenTTL)
}

// ChangePassword accumulates every applicable error; the stored hash is
// only replaced when the whole pipeline passes.
func (s *UserService) ChangePassword(ctx context.Context, actor access.Principal, cmd *command.ChangePasswordCommand) error {
	user, err := s.requireUser(ctx, actor)
	if err != nil {
		return err
	}

	var errs []string
	if cmd.CurrentPassword == "" || cmd.NewPassword == "" || cmd.ConfirmNewPassword == "" {
		errs = append(errs, "all fields are required")
	}
	if cmd.CurrentPassword != "" && user.CheckPassword(cmd.CurrentPassword) != nil {
		errs = append(errs, "incorrect current password")
	}
	if cmd.NewPassword != cmd.ConfirmNewPassword {
		errs = append(errs, "new passwords do not match")
	}
	if cmd.NewPassword != "" {
		errs = append(errs, validation.PasswordErrors(cmd.NewPassword)...)
	}
	if len(errs) > 0 {
		return apperrors.Validation(errs...)
	}

	if err := user.SetHashedPassword(cmd.NewPassword); err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, user.Password)
}

func (s *UserService) DeleteAccount(ctx context.Context, actor access.Principal, cmd *command.DeleteAccountCommand) error {
	user, err := s.requireUser(ctx, actor)
	if err != nil {
		return err
	}

	if cmd.Password == "" || user.CheckPassword(cmd.Password) != nil {
		return apperrors.Authentication("incorrect password, account deletion failed")
	}

	// Repository delete cascades over the user's tasks.
	return s.userRepo.Delete(ctx, user.ID)
}

func (s *UserService) Profile(ctx context.Context, actor access.Principal) (*common.ProfileResult, error) {
	user, err := s.requireUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	all, err := s.taskRepo.CountByOwner(ctx, user.ID, nil)
	if err != nil {
		return nil, err
	}
	done := true
	completed, err := s.taskRepo.CountByOwner(ctx, user.ID, &done)
	if err != nil {
		return nil, err
	}

	return &common.ProfileResult{
		Username:        user.Username,
		AllTasks:        all,
		CompletedTasks:  completed,
		IncompleteTasks: all - completed,
	}, nil
}

func (s *UserService) AdminListUsers(ctx context.Context, actor access.Principal) ([]common.UserResult, error) {
	if !access.IsAdmin(actor) {
		return nil, apperrors.NotAuthorized()
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]common.UserResult, 0, len(users))
	for i := range users {
		results = append(results, *mapper.NewUserResultFromEntity(&users[i]))
	}
	return results, nil
}

// AdminDeleteUser removes the target and their tasks. There is no
// self-protection rule: an admin may delete their own account this way.
func (s *UserService) AdminDeleteUser(ctx context.Context, actor access.Principal, targetID uint) error {
	if !access.IsAdmin(actor) {
		return apperrors.NotAuthorized()
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return apperrors.NotFound("user")
	}

	return s.userRepo.Delete(ctx, target.ID)
}

func (s *UserService) requireUser(ctx context.Context, actor access.Principal) (*entities.User, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.NotAuthorized()
	}
	user, err := s.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user")
	}
	return user, nil
}
