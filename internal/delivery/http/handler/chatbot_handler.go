package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/usecase"
	"famlink-api/pkg/response"
	"famlink-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ChatbotHandler struct {
	chatbotUsecase usecase.ChatbotUsecase
	validator      *validator.CustomValidator
	logger         *logrus.Logger
}

func NewChatbotHandler(chatbotUsecase usecase.ChatbotUsecase, validator *validator.CustomValidator, logger *logrus.Logger) *ChatbotHandler {
	return &ChatbotHandler{
		chatbotUsecase: chatbotUsecase,
		validator:      validator,
		logger:         logger,
	}
}

// ListByUser handles a user's conversation history
func (h *ChatbotHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	conversations, err := h.chatbotUsecase.ListByUser(r.Context(), userID, page, pageSize)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Conversations retrieved successfully", conversations)
}

// Get handles the full conversation view
func (h *ChatbotHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid conversation ID")
		return
	}

	conversation, err := h.chatbotUsecase.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Conversation retrieved successfully", conversation)
}

// Start handles opening a new conversation
func (h *ChatbotHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req dto.StartConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	conversation, err := h.chatbotUsecase.Start(r.Context(), &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Conversation started successfully", conversation)
}

// SendMessage handles appending a user message and the assistant reply
func (h *ChatbotHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid conversation ID")
		return
	}

	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.chatbotUsecase.SendMessage(r.Context(), id, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Message sent successfully", result)
}

// Delete handles soft-deleting a conversation
func (h *ChatbotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid conversation ID")
		return
	}

	if err := h.chatbotUsecase.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// HealthTips handles the static age-banded tip listing
func (h *ChatbotHandler) HealthTips(w http.ResponseWriter, r *http.Request) {
	var ageInMonths *int
	if raw := r.URL.Query().Get("ageInMonths"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			ageInMonths = &parsed
		}
	}

	response.Success(w, http.StatusOK, "Health tips retrieved successfully", h.chatbotUsecase.HealthTips(ageInMonths))
}

func (h *ChatbotHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrConversationNotFound):
		response.NotFound(w, "Conversation not found")
	case errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, usecase.ErrInvalidUser):
		response.BadRequest(w, "Invalid user")
	case errors.Is(err, usecase.ErrInvalidChild):
		response.BadRequest(w, "Invalid child")
	default:
		h.logger.WithError(err).Error("chatbot handler failure")
		response.InternalServerError(w, "Internal server error")
	}
}
