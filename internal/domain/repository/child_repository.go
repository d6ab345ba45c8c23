package repository

import (
	"context"

	"famlink-api/internal/domain/entity"

	"github.com/google/uuid"
)

type ChildRepository interface {
	Create(ctx context.Context, child *entity.Child) error
	Update(ctx context.Context, child *entity.Child) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Child, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Child, error)
	// FindActiveWithParent preloads the owning parent.
	FindActiveWithParent(ctx context.Context, id uuid.UUID) (*entity.Child, error)
	// FindActiveByParentID returns active children ordered by date of birth.
	FindActiveByParentID(ctx context.Context, parentID uuid.UUID) ([]entity.Child, error)
}
