package converter

import (
	"time"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its response DTO
func MedicalRecordToResponse(record *entity.MedicalRecord, now time.Time) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:             record.ID,
		ChildID:        record.ChildID,
		RecordType:     record.RecordType,
		Title:          record.Title,
		Description:    record.Description,
		DoctorName:     record.DoctorName,
		HospitalName:   record.HospitalName,
		RecordDate:     record.RecordDate,
		Medications:    record.Medications,
		Notes:          record.Notes,
		AttachmentURLs: record.AttachmentURLs,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
	if response.AttachmentURLs == nil {
		response.AttachmentURLs = []string{}
	}

	if record.Child != nil {
		response.Child = ChildToSummary(record.Child, now)
	}

	return response
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities
func MedicalRecordsToResponses(records []entity.MedicalRecord, now time.Time) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		resp := MedicalRecordToResponse(&record, now)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
