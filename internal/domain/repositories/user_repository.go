package repositories

import (
	"context"

	"taskboard/internal/domain/entities"
)

// Find methods return (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdatePassword(ctx context.Context, id uint, hash string) error
	// Delete removes the user and every task they own.
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]entities.User, error)
}
