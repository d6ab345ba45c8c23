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

type ChildHandler struct {
	childUsecase usecase.ChildUsecase
	validator    *validator.CustomValidator
	logger       *logrus.Logger
}

func NewChildHandler(childUsecase usecase.ChildUsecase, validator *validator.CustomValidator, logger *logrus.Logger) *ChildHandler {
	return &ChildHandler{
		childUsecase: childUsecase,
		validator:    validator,
		logger:       logger,
	}
}

// Create handles child profile creation
func (h *ChildHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	child, err := h.childUsecase.Create(r.Context(), &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Child created successfully", child)
}

// GetByID handles the child detail view
func (h *ChildHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid child ID")
		return
	}

	child, err := h.childUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Child retrieved successfully", child)
}

// GetByParent handles listing a parent's children
func (h *ChildHandler) GetByParent(w http.ResponseWriter, r *http.Request) {
	parentID, err := uuid.Parse(mux.Vars(r)["parentId"])
	if err != nil {
		response.BadRequest(w, "Invalid parent ID")
		return
	}

	children, err := h.childUsecase.GetByParent(r.Context(), parentID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Children retrieved successfully", children)
}

// Update handles partial child updates
func (h *ChildHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid child ID")
		return
	}

	var req dto.UpdateChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	child, err := h.childUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Child updated successfully", child)
}

// Delete handles soft-deleting a child
func (h *ChildHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid child ID")
		return
	}

	if err := h.childUsecase.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// Dashboard handles the aggregated child dashboard view
func (h *ChildHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid child ID")
		return
	}

	dashboard, err := h.childUsecase.Dashboard(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *ChildHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrChildNotFound):
		response.NotFound(w, "Child not found")
	case errors.Is(err, usecase.ErrParentNotFound):
		response.NotFound(w, "Parent not found")
	case errors.Is(err, usecase.ErrInvalidParent):
		response.BadRequest(w, "Invalid parent")
	default:
		h.logger.WithError(err).Error("child handler failure")
		response.InternalServerError(w, "Internal server error")
	}
}
