package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	ChildID        uuid.UUID `json:"child_id" validate:"required"`
	RecordType     string    `json:"record_type" validate:"required,max=50"`
	Title          string    `json:"title" validate:"required,max=200"`
	Description    string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	DoctorName     string    `json:"doctor_name,omitempty" validate:"omitempty,max=200"`
	HospitalName   string    `json:"hospital_name,omitempty" validate:"omitempty,max=200"`
	RecordDate     time.Time `json:"record_date" validate:"required"`
	Medications    string    `json:"medications,omitempty" validate:"omitempty,max=1000"`
	Notes          string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	AttachmentURLs []string  `json:"attachment_urls,omitempty"`
}

type UpdateMedicalRecordRequest struct {
	RecordType     *string    `json:"record_type,omitempty" validate:"omitempty,max=50"`
	Title          *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description    *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	DoctorName     *string    `json:"doctor_name,omitempty" validate:"omitempty,max=200"`
	HospitalName   *string    `json:"hospital_name,omitempty" validate:"omitempty,max=200"`
	RecordDate     *time.Time `json:"record_date,omitempty"`
	Medications    *string    `json:"medications,omitempty" validate:"omitempty,max=1000"`
	Notes          *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	AttachmentURLs *[]string  `json:"attachment_urls,omitempty"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID             uuid.UUID     `json:"id"`
	ChildID        uuid.UUID     `json:"child_id"`
	RecordType     string        `json:"record_type"`
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	DoctorName     string        `json:"doctor_name,omitempty"`
	HospitalName   string        `json:"hospital_name,omitempty"`
	RecordDate     time.Time     `json:"record_date"`
	Medications    string        `json:"medications,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	AttachmentURLs []string      `json:"attachment_urls"`
	Child          *ChildSummary `json:"child,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	PageMeta
}

type RecordTypeCount struct {
	RecordType string `json:"record_type"`
	Count      int    `json:"count"`
}

type MedicalRecordSummaryResponse struct {
	ChildID             uuid.UUID               `json:"child_id"`
	TotalRecords        int                     `json:"total_records"`
	RecordsByType       []RecordTypeCount       `json:"records_by_type"`
	RecentRecords       []MedicalRecordResponse `json:"recent_records"`
	LastVaccinationDate *time.Time              `json:"last_vaccination_date,omitempty"`
	LastCheckupDate     *time.Time              `json:"last_checkup_date,omitempty"`
}

type RecordTypesResponse struct {
	Types []string `json:"types"`
}
