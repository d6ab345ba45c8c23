package handler

import (
	"errors"
	"net/http"
	"strconv"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/repository"
	"famlink-api/internal/usecase"
	"famlink-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	logger          *logrus.Logger
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, logger *logrus.Logger) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		logger:          logger,
	}
}

// List handles the filterable, optionally geo-annotated hospital directory
func (h *HospitalHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	filter := repository.HospitalFilter{
		City:      query.Get("city"),
		State:     query.Get("state"),
		Specialty: query.Get("specialty"),
	}

	var geoQuery usecase.GeoQuery
	if lat := query.Get("latitude"); lat != "" {
		if parsed, err := strconv.ParseFloat(lat, 64); err == nil {
			geoQuery.Latitude = &parsed
		}
	}
	if lon := query.Get("longitude"); lon != "" {
		if parsed, err := strconv.ParseFloat(lon, 64); err == nil {
			geoQuery.Longitude = &parsed
		}
	}
	if radius := query.Get("radiusKm"); radius != "" {
		if parsed, err := strconv.ParseFloat(radius, 64); err == nil {
			geoQuery.RadiusKm = &parsed
		}
	}

	hospitals, err := h.hospitalUsecase.List(r.Context(), filter, geoQuery, page, pageSize)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

// GetByID handles the hospital detail view with upcoming slots
func (h *HospitalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

// Search handles free-text hospital search
func (h *HospitalHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.hospitalUsecase.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", results)
}

// Specialties handles the common specialty listing
func (h *HospitalHandler) Specialties(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", dto.SpecialtiesResponse{
		Specialties: h.hospitalUsecase.Specialties(),
	})
}

func (h *HospitalHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrHospitalNotFound):
		response.NotFound(w, "Hospital not found")
	case errors.Is(err, usecase.ErrEmptySearchQuery):
		response.BadRequest(w, "Search query must not be empty")
	default:
		h.logger.WithError(err).Error("hospital handler failure")
		response.InternalServerError(w, "Internal server error")
	}
}
