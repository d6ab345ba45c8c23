package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	UserID          uuid.UUID  `json:"user_id" validate:"required"`
	ChildID         *uuid.UUID `json:"child_id,omitempty"`
	DoctorName      string     `json:"doctor_name,omitempty" validate:"omitempty,max=200"`
	AppointmentDate time.Time  `json:"appointment_date" validate:"required"`
	AppointmentType string     `json:"appointment_type" validate:"required,max=100"`
	Notes           string     `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=Scheduled Confirmed InProgress Completed Cancelled NoShow"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"user_id"`
	ChildID         *uuid.UUID        `json:"child_id,omitempty"`
	HospitalID      uuid.UUID         `json:"hospital_id"`
	DoctorName      string            `json:"doctor_name,omitempty"`
	AppointmentDate time.Time         `json:"appointment_date"`
	AppointmentType string            `json:"appointment_type"`
	Status          string            `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	IsUpcoming      bool              `json:"is_upcoming"`
	IsPast          bool              `json:"is_past"`
	User            *UserSummary      `json:"user,omitempty"`
	Child           *ChildSummary     `json:"child,omitempty"`
	Hospital        *HospitalResponse `json:"hospital,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
