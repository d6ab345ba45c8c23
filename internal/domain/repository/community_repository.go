package repository

import (
	"context"

	"famlink-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PostFilter narrows community post listings. Search matches title or
// content substrings.
type PostFilter struct {
	Category string
	Search   string
}

type CommunityPostRepository interface {
	Create(ctx context.Context, post *entity.CommunityPost) error
	Update(ctx context.Context, post *entity.CommunityPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error)
	// FindActiveWithAuthor preloads the post author.
	FindActiveWithAuthor(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error)
	// FindActive returns one page ordered by creation descending with authors
	// preloaded, plus the total matching count.
	FindActive(ctx context.Context, filter PostFilter, offset, limit int) ([]entity.CommunityPost, int64, error)
}

type CommunityCommentRepository interface {
	Create(ctx context.Context, comment *entity.CommunityComment) error
	Update(ctx context.Context, comment *entity.CommunityComment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityComment, error)
	// FindActiveWithAuthor preloads the comment author.
	FindActiveWithAuthor(ctx context.Context, id uuid.UUID) (*entity.CommunityComment, error)
	// FindActiveByPost returns the flat active comment list for a post,
	// replies included, ordered by creation ascending, authors preloaded.
	FindActiveByPost(ctx context.Context, postID uuid.UUID) ([]entity.CommunityComment, error)
}

type CommunityLikeRepository interface {
	Create(ctx context.Context, like *entity.CommunityLike) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*entity.CommunityLike, error)
	FindByUserAndComment(ctx context.Context, userID, commentID uuid.UUID) (*entity.CommunityLike, error)
}
