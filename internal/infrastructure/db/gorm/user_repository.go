package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/apperrors"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		CreatedAt: userEntity.CreatedAt,
		UpdatedAt: userEntity.UpdatedAt,
		Username:  userEntity.Username,
		Email:     userEntity.Email,
		Password:  userEntity.Password,
		Role:      string(userEntity.Role),
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		// Safety net for the concurrent-signup race: the unique index is
		// the authority, the pre-insert existence checks are advisory.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("username or email already exists")
		}
		return nil, err
	}

	return r.FindByID(ctx, userModel.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Update("password", hash).Error
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	// Tasks never outlive their owner.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&TaskModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&UserModel{}, "id = ?", id).Error
	})
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entities.User, error) {
	var userModels []UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, *r.mapToEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		ID:        userModel.ID,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
		Username:  userModel.Username,
		Email:     userModel.Email,
		Password:  userModel.Password,
		Role:      entities.Role(userModel.Role),
	}
}
