package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/repository"
	"famlink-api/internal/usecase"
	"famlink-api/pkg/response"
	"famlink-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
	logger        *logrus.Logger
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator, logger *logrus.Logger) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
		logger:        logger,
	}
}

// Create handles medical record creation
func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

// GetByID handles the record detail view
func (h *MedicalRecordHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	record, err := h.recordUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", record)
}

// GetByChild handles the paginated, filterable record history of a child
func (h *MedicalRecordHandler) GetByChild(w http.ResponseWriter, r *http.Request) {
	childID, err := uuid.Parse(mux.Vars(r)["childId"])
	if err != nil {
		response.BadRequest(w, "Invalid child ID")
		return
	}

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	filter := repository.MedicalRecordFilter{RecordType: query.Get("recordType")}
	if from := query.Get("fromDate"); from != "" {
		if parsed, err := time.Parse(time.RFC3339, from); err == nil {
			filter.FromDate = &parsed
		}
	}
	if to := query.Get("toDate"); to != "" {
		if parsed, err := time.Parse(time.RFC3339, to); err == nil {
			filter.ToDate = &parsed
		}
	}

	records, err := h.recordUsecase.GetByChild(r.Context(), childID, filter, page, pageSize)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}

// Update handles partial record updates
func (h *MedicalRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", record)
}

// Delete handles soft-deleting a record
func (h *MedicalRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	if err := h.recordUsecase.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// Summary handles the grouped record summary of a child
func (h *MedicalRecordHandler) Summary(w http.ResponseWriter, r *http.Request) {
	childID, err := uuid.Parse(mux.Vars(r)["childId"])
	if err != nil {
		response.BadRequest(w, "Invalid child ID")
		return
	}

	summary, err := h.recordUsecase.Summary(r.Context(), childID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medical record summary retrieved successfully", summary)
}

// Types handles the record type name listing
func (h *MedicalRecordHandler) Types(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Record types retrieved successfully", dto.RecordTypesResponse{
		Types: h.recordUsecase.Types(),
	})
}

func (h *MedicalRecordHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrMedicalRecordNotFound):
		response.NotFound(w, "Medical record not found")
	case errors.Is(err, usecase.ErrChildNotFound):
		response.NotFound(w, "Child not found")
	case errors.Is(err, usecase.ErrInvalidChild):
		response.BadRequest(w, "Invalid child")
	default:
		h.logger.WithError(err).Error("medical record handler failure")
		response.InternalServerError(w, "Internal server error")
	}
}
