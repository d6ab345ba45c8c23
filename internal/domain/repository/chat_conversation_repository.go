package repository

import (
	"context"

	"famlink-api/internal/domain/entity"

	"github.com/google/uuid"
)

type ChatConversationRepository interface {
	Create(ctx context.Context, conversation *entity.ChatConversation) error
	Update(ctx context.Context, conversation *entity.ChatConversation) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error)
	// FindActiveWithRelations preloads the owning user and child.
	FindActiveWithRelations(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error)
	// FindActiveByUser returns one page ordered by update time descending
	// with children preloaded, plus the total count.
	FindActiveByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entity.ChatConversation, int64, error)
}
