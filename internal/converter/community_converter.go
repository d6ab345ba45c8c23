package converter

import (
	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PostToResponse converts a CommunityPost entity to PostResponse DTO
func PostToResponse(post *entity.CommunityPost) *dto.PostResponse {
	if post == nil {
		return nil
	}

	response := &dto.PostResponse{
		ID:            post.ID,
		UserID:        post.UserID,
		Title:         post.Title,
		Content:       post.Content,
		Category:      post.Category,
		Tags:          post.Tags,
		ImageURLs:     post.ImageURLs,
		LikesCount:    post.LikesCount,
		CommentsCount: post.CommentsCount,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
	if response.Tags == nil {
		response.Tags = []string{}
	}
	if response.ImageURLs == nil {
		response.ImageURLs = []string{}
	}

	if post.User != nil {
		response.Author = UserToSummary(post.User)
	}

	return response
}

// PostsToResponses converts a slice of CommunityPost entities
func PostsToResponses(posts []entity.CommunityPost) []dto.PostResponse {
	responses := make([]dto.PostResponse, len(posts))
	for i, post := range posts {
		resp := PostToResponse(&post)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// CommentToResponse converts a CommunityComment entity to CommentResponse DTO
func CommentToResponse(comment *entity.CommunityComment) *dto.CommentResponse {
	if comment == nil {
		return nil
	}

	response := &dto.CommentResponse{
		ID:              comment.ID,
		PostID:          comment.PostID,
		UserID:          comment.UserID,
		ParentCommentID: comment.ParentCommentID,
		Content:         comment.Content,
		LikesCount:      comment.LikesCount,
		Replies:         []dto.CommentResponse{},
		CreatedAt:       comment.CreatedAt,
		UpdatedAt:       comment.UpdatedAt,
	}

	if comment.User != nil {
		response.Author = UserToSummary(comment.User)
	}

	return response
}

// BuildCommentTree assembles a flat, creation-ordered comment list into
// top-level comments with one level of replies. Replies whose parent is
// missing from the list are dropped.
func BuildCommentTree(comments []entity.CommunityComment) []dto.CommentResponse {
	topLevel := make([]dto.CommentResponse, 0)
	index := make(map[uuid.UUID]int)

	for _, comment := range comments {
		if comment.IsReply() {
			continue
		}
		topLevel = append(topLevel, *CommentToResponse(&comment))
		index[comment.ID] = len(topLevel) - 1
	}

	for _, comment := range comments {
		if !comment.IsReply() {
			continue
		}
		if i, ok := index[*comment.ParentCommentID]; ok {
			topLevel[i].Replies = append(topLevel[i].Replies, *CommentToResponse(&comment))
		}
	}

	return topLevel
}
