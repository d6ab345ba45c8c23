package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/usecase"
	"famlink-api/pkg/response"
	"famlink-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
	logger      *logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
		logger:      logger,
	}
}

// Create handles user registration
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Create(r.Context(), &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

// GetByID handles getting a user with their children
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	user, err := h.userUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

// GetByExternalAuthID handles lookup by the external auth provider's subject id
func (h *UserHandler) GetByExternalAuthID(w http.ResponseWriter, r *http.Request) {
	externalID := mux.Vars(r)["externalId"]
	if externalID == "" {
		response.BadRequest(w, "Invalid external auth ID")
		return
	}

	user, err := h.userUsecase.GetByExternalAuthID(r.Context(), externalID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

// GetAll handles listing active users
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAll(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// Update handles partial profile updates
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

// Delete handles soft-deleting a user
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if err := h.userUsecase.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *UserHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, usecase.ErrExternalAuthIDUsed):
		response.Conflict(w, "External auth ID already registered")
	case errors.Is(err, usecase.ErrEmailTaken):
		response.Conflict(w, "Email already registered")
	default:
		h.logger.WithError(err).Error("user handler failure")
		response.InternalServerError(w, "Internal server error")
	}
}
