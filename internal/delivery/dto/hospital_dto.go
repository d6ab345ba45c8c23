package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type HospitalResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code,omitempty"`
	FullAddress  string    `json:"full_address"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Email        string    `json:"email,omitempty"`
	Website      string    `json:"website,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Specialties  []string  `json:"specialties"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	DistanceKm   *float64  `json:"distance_km,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	PageMeta
}

type AppointmentSlot struct {
	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentType string    `json:"appointment_type"`
	Status          string    `json:"status"`
}

type HospitalDetailResponse struct {
	HospitalResponse
	UpcomingAppointments []AppointmentSlot `json:"upcoming_appointments"`
}

type HospitalSearchResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}

type SpecialtiesResponse struct {
	Specialties []string `json:"specialties"`
}
