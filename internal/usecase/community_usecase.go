package usecase

import (
	"context"
	"errors"

	"famlink-api/internal/converter"
	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
	"famlink-api/internal/domain/repository"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidComment  = errors.New("invalid parent comment")
)

const defaultPostPageSize = 10

type CommunityUsecase interface {
	ListPosts(ctx context.Context, filter repository.PostFilter, page, pageSize int) (*dto.PostListResponse, error)
	GetPost(ctx context.Context, id uuid.UUID) (*dto.PostDetailResponse, error)
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	CreateComment(ctx context.Context, postID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	TogglePostLike(ctx context.Context, postID, userID uuid.UUID) (*dto.ToggleLikeResponse, error)
	ToggleCommentLike(ctx context.Context, commentID, userID uuid.UUID) (*dto.ToggleLikeResponse, error)
	Categories() []string
}

type communityUsecase struct {
	postRepo    repository.CommunityPostRepository
	commentRepo repository.CommunityCommentRepository
	likeRepo    repository.CommunityLikeRepository
	userRepo    repository.UserRepository
}

func NewCommunityUsecase(
	postRepo repository.CommunityPostRepository,
	commentRepo repository.CommunityCommentRepository,
	likeRepo repository.CommunityLikeRepository,
	userRepo repository.UserRepository,
) CommunityUsecase {
	return &communityUsecase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
	}
}

func (u *communityUsecase) ListPosts(ctx context.Context, filter repository.PostFilter, page, pageSize int) (*dto.PostListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPostPageSize
	}
	offset := (page - 1) * pageSize

	posts, total, err := u.postRepo.FindActive(ctx, filter, offset, pageSize)
	if err != nil {
		return nil, err
	}

	return &dto.PostListResponse{
		Posts:    converter.PostsToResponses(posts),
		PageMeta: dto.NewPageMeta(total, page, pageSize),
	}, nil
}

func (u *communityUsecase) GetPost(ctx context.Context, id uuid.UUID) (*dto.PostDetailResponse, error) {
	post, err := u.postRepo.FindActiveWithAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, err := u.commentRepo.FindActiveByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.PostDetailResponse{
		PostResponse: *converter.PostToResponse(post),
		Comments:     converter.BuildCommentTree(comments),
	}, nil
}

func (u *communityUsecase) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	user, err := u.userRepo.FindActiveByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidUser
	}

	post := &entity.CommunityPost{
		UserID:    req.UserID,
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
		ImageURLs: req.ImageURLs,
		IsActive:  true,
	}

	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	post.User = user
	return converter.PostToResponse(post), nil
}

func (u *communityUsecase) CreateComment(ctx context.Context, postID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	post, err := u.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsActive {
		return nil, ErrPostNotFound
	}

	user, err := u.userRepo.FindActiveByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidUser
	}

	if req.ParentCommentID != nil {
		parent, err := u.commentRepo.FindByID(ctx, *req.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || !parent.IsActive || parent.PostID != postID {
			return nil, ErrInvalidComment
		}
	}

	comment := &entity.CommunityComment{
		PostID:          postID,
		UserID:          req.UserID,
		ParentCommentID: req.ParentCommentID,
		Content:         req.Content,
		IsActive:        true,
	}

	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	post.CommentsCount++
	if err := u.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	comment.User = user
	return converter.CommentToResponse(comment), nil
}

func (u *communityUsecase) TogglePostLike(ctx context.Context, postID, userID uuid.UUID) (*dto.ToggleLikeResponse, error) {
	post, err := u.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsActive {
		return nil, ErrPostNotFound
	}

	user, err := u.userRepo.FindActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidUser
	}

	existing, err := u.likeRepo.FindByUserAndPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := u.likeRepo.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		if post.LikesCount > 0 {
			post.LikesCount--
		}
		if err := u.postRepo.Update(ctx, post); err != nil {
			return nil, err
		}
		return &dto.ToggleLikeResponse{Liked: false, LikesCount: post.LikesCount}, nil
	}

	like := &entity.CommunityLike{UserID: userID, PostID: &postID}
	if err := u.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	post.LikesCount++
	if err := u.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return &dto.ToggleLikeResponse{Liked: true, LikesCount: post.LikesCount}, nil
}

func (u *communityUsecase) ToggleCommentLike(ctx context.Context, commentID, userID uuid.UUID) (*dto.ToggleLikeResponse, error) {
	comment, err := u.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || !comment.IsActive {
		return nil, ErrCommentNotFound
	}

	user, err := u.userRepo.FindActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidUser
	}

	existing, err := u.likeRepo.FindByUserAndComment(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := u.likeRepo.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		if comment.LikesCount > 0 {
			comment.LikesCount--
		}
		if err := u.commentRepo.Update(ctx, comment); err != nil {
			return nil, err
		}
		return &dto.ToggleLikeResponse{Liked: false, LikesCount: comment.LikesCount}, nil
	}

	like := &entity.CommunityLike{UserID: userID, CommentID: &commentID}
	if err := u.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	comment.LikesCount++
	if err := u.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return &dto.ToggleLikeResponse{Liked: true, LikesCount: comment.LikesCount}, nil
}

func (u *communityUsecase) Categories() []string {
	return entity.PostCategories
}
