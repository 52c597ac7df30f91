package repositories

import (
	"context"

	"taskboard/internal/domain/entities"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error)
	FindByID(ctx context.Context, id uint) (*entities.Task, error)
	// FindByOwner lists a user's tasks; completed narrows by the flag when
	// non-nil.
	FindByOwner(ctx context.Context, ownerID uint, completed *bool) ([]entities.Task, error)
	SearchByTitle(ctx context.Context, ownerID uint, query string) ([]entities.Task, error)
	Update(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error)
	Delete(ctx context.Context, id uint) error
	DeleteByOwner(ctx context.Context, ownerID uint) error
	CountByOwner(ctx context.Context, ownerID uint, completed *bool) (int64, error)
}
