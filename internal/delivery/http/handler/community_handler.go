package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/repository"
	"famlink-api/internal/usecase"
	"famlink-api/pkg/response"
	"famlink-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type CommunityHandler struct {
	communityUsecase usecase.CommunityUsecase
	validator        *validator.CustomValidator
	logger           *logrus.Logger
}

func NewCommunityHandler(communityUsecase usecase.CommunityUsecase, validator *validator.CustomValidator, logger *logrus.Logger) *CommunityHandler {
	return &CommunityHandler{
		communityUsecase: communityUsecase,
		validator:        validator,
		logger:           logger,
	}
}

// ListPosts handles the filterable post feed
func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	filter := repository.PostFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
	}

	posts, err := h.communityUsecase.ListPosts(r.Context(), filter, page, pageSize)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Posts retrieved successfully", posts)
}

// GetPost handles the post detail view with its comment tree
func (h *CommunityHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid post ID")
		return
	}

	post, err := h.communityUsecase.GetPost(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Post retrieved successfully", post)
}

// CreatePost handles post creation
func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	post, err := h.communityUsecase.CreatePost(r.Context(), &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Post created successfully", post)
}

// CreateComment handles commenting on a post
func (h *CommunityHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid post ID")
		return
	}

	var req dto.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	comment, err := h.communityUsecase.CreateComment(r.Context(), postID, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Comment created successfully", comment)
}

// TogglePostLike handles liking/unliking a post
func (h *CommunityHandler) TogglePostLike(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid post ID")
		return
	}

	var req dto.ToggleLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.communityUsecase.TogglePostLike(r.Context(), postID, req.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Like toggled successfully", result)
}

// ToggleCommentLike handles liking/unliking a comment
func (h *CommunityHandler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid comment ID")
		return
	}

	var req dto.ToggleLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.communityUsecase.ToggleCommentLike(r.Context(), commentID, req.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Like toggled successfully", result)
}

// Categories handles the category name listing
func (h *CommunityHandler) Categories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Categories retrieved successfully", dto.CategoriesResponse{
		Categories: h.communityUsecase.Categories(),
	})
}

func (h *CommunityHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrPostNotFound):
		response.NotFound(w, "Post not found")
	case errors.Is(err, usecase.ErrCommentNotFound):
		response.NotFound(w, "Comment not found")
	case errors.Is(err, usecase.ErrInvalidUser):
		response.BadRequest(w, "Invalid user")
	case errors.Is(err, usecase.ErrInvalidComment):
		response.BadRequest(w, "Invalid parent comment")
	default:
		h.logger.WithError(err).Error("community handler failure")
		response.InternalServerError(w, "Internal server error")
	}
}
