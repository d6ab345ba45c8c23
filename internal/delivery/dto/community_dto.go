package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePostRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=300"`
	Content   string    `json:"content" validate:"required"`
	Category  string    `json:"category,omitempty" validate:"omitempty,max=100"`
	Tags      []string  `json:"tags,omitempty"`
	ImageURLs []string  `json:"image_urls,omitempty"`
}

type CreateCommentRequest struct {
	UserID          uuid.UUID  `json:"user_id" validate:"required"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id,omitempty"`
	Content         string     `json:"content" validate:"required,max=2000"`
}

type ToggleLikeRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// Response DTOs

type PostResponse struct {
	ID            uuid.UUID    `json:"id"`
	UserID        uuid.UUID    `json:"user_id"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Category      string       `json:"category,omitempty"`
	Tags          []string     `json:"tags"`
	ImageURLs     []string     `json:"image_urls"`
	LikesCount    int          `json:"likes_count"`
	CommentsCount int          `json:"comments_count"`
	Author        *UserSummary `json:"author,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	PageMeta
}

type CommentResponse struct {
	ID              uuid.UUID         `json:"id"`
	PostID          uuid.UUID         `json:"post_id"`
	UserID          uuid.UUID         `json:"user_id"`
	ParentCommentID *uuid.UUID        `json:"parent_comment_id,omitempty"`
	Content         string            `json:"content"`
	LikesCount      int               `json:"likes_count"`
	Author          *UserSummary      `json:"author,omitempty"`
	Replies         []CommentResponse `json:"replies"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type PostDetailResponse struct {
	PostResponse
	Comments []CommentResponse `json:"comments"`
}

type ToggleLikeResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
