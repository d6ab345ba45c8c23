package handler

import (
	"encoding/json"
	"net/http"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/service"
	"famlink-api/pkg/response"
	"famlink-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	store     service.ObjectStore
	validator *validator.CustomValidator
	logger    *logrus.Logger
}

func NewUploadHandler(store service.ObjectStore, validator *validator.CustomValidator, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// Upload handles minting a storage URL for a file
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req dto.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	url, err := h.store.Upload(r.Context(), req.Folder, req.FileName, req.ContentType)
	if err != nil {
		h.logger.WithError(err).Error("upload failure")
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.Success(w, http.StatusCreated, "File uploaded successfully", dto.UploadResponse{
		FileName: req.FileName,
		URL:      url,
	})
}
