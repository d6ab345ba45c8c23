package repository

import (
	"context"

	"famlink-api/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindActiveWithChildren preloads the user's active children.
	FindActiveWithChildren(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindActiveByExternalID(ctx context.Context, externalID string) (*entity.User, error)
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAllActive(ctx context.Context) ([]entity.User, error)
}
