package repository

import (
	"context"
	"errors"

	"famlink-api/internal/domain/entity"
	domainRepo "famlink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type communityPostRepository struct {
	db *gorm.DB
}

func NewCommunityPostRepository(db *gorm.DB) domainRepo.CommunityPostRepository {
	return &communityPostRepository{db: db}
}

func (r *communityPostRepository) Create(ctx context.Context, post *entity.CommunityPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *communityPostRepository) Update(ctx context.Context, post *entity.CommunityPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *communityPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	var post entity.CommunityPost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *communityPostRepository) FindActiveWithAuthor(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	var post entity.CommunityPost
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND is_active = ?", id, true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *communityPostRepository) FindActive(ctx context.Context, filter domainRepo.PostFilter, offset, limit int) ([]entity.CommunityPost, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.CommunityPost{}).
		Where("is_active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			r.db.Where("title LIKE ?", pattern).Or("content LIKE ?", pattern),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []entity.CommunityPost
	err := query.
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

type communityCommentRepository struct {
	db *gorm.DB
}

func NewCommunityCommentRepository(db *gorm.DB) domainRepo.CommunityCommentRepository {
	return &communityCommentRepository{db: db}
}

func (r *communityCommentRepository) Create(ctx context.Context, comment *entity.CommunityComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *communityCommentRepository) Update(ctx context.Context, comment *entity.CommunityComment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *communityCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityComment, error) {
	var comment entity.CommunityComment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *communityCommentRepository) FindActiveWithAuthor(ctx context.Context, id uuid.UUID) (*entity.CommunityComment, error) {
	var comment entity.CommunityComment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND is_active = ?", id, true).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *communityCommentRepository) FindActiveByPost(ctx context.Context, postID uuid.UUID) ([]entity.CommunityComment, error) {
	var comments []entity.CommunityComment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ? AND is_active = ?", postID, true).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

type communityLikeRepository struct {
	db *gorm.DB
}

func NewCommunityLikeRepository(db *gorm.DB) domainRepo.CommunityLikeRepository {
	return &communityLikeRepository{db: db}
}

func (r *communityLikeRepository) Create(ctx context.Context, like *entity.CommunityLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *communityLikeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CommunityLike{}, "id = ?", id).Error
}

func (r *communityLikeRepository) FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*entity.CommunityLike, error) {
	var like entity.CommunityLike
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *communityLikeRepository) FindByUserAndComment(ctx context.Context, userID, commentID uuid.UUID) (*entity.CommunityLike, error) {
	var like entity.CommunityLike
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}
