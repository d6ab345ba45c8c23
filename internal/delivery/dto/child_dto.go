package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateChildRequest struct {
	ParentID          uuid.UUID `json:"parent_id" validate:"required"`
	FirstName         string    `json:"first_name" validate:"required,max=100"`
	LastName          string    `json:"last_name" validate:"required,max=100"`
	DateOfBirth       time.Time `json:"date_of_birth" validate:"required"`
	Gender            string    `json:"gender" validate:"required,max=10"`
	BloodType         string    `json:"blood_type,omitempty" validate:"omitempty,max=5"`
	Allergies         string    `json:"allergies,omitempty" validate:"omitempty,max=1000"`
	MedicalConditions string    `json:"medical_conditions,omitempty" validate:"omitempty,max=1000"`
	EmergencyContact  string    `json:"emergency_contact,omitempty" validate:"omitempty,max=255"`
	EmergencyPhone    string    `json:"emergency_phone,omitempty" validate:"omitempty,max=20"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty" validate:"omitempty,max=500"`
}

type UpdateChildRequest struct {
	FirstName         *string    `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName          *string    `json:"last_name,omitempty" validate:"omitempty,max=100"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Gender            *string    `json:"gender,omitempty" validate:"omitempty,max=10"`
	BloodType         *string    `json:"blood_type,omitempty" validate:"omitempty,max=5"`
	Allergies         *string    `json:"allergies,omitempty" validate:"omitempty,max=1000"`
	MedicalConditions *string    `json:"medical_conditions,omitempty" validate:"omitempty,max=1000"`
	EmergencyContact  *string    `json:"emergency_contact,omitempty" validate:"omitempty,max=255"`
	EmergencyPhone    *string    `json:"emergency_phone,omitempty" validate:"omitempty,max=20"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty" validate:"omitempty,max=500"`
}

// Response DTOs

type ChildResponse struct {
	ID                uuid.UUID    `json:"id"`
	ParentID          uuid.UUID    `json:"parent_id"`
	FirstName         string       `json:"first_name"`
	LastName          string       `json:"last_name"`
	FullName          string       `json:"full_name"`
	DateOfBirth       time.Time    `json:"date_of_birth"`
	AgeInYears        int          `json:"age_in_years"`
	AgeInMonths       int          `json:"age_in_months"`
	Gender            string       `json:"gender"`
	BloodType         string       `json:"blood_type,omitempty"`
	Allergies         string       `json:"allergies,omitempty"`
	MedicalConditions string       `json:"medical_conditions,omitempty"`
	EmergencyContact  string       `json:"emergency_contact,omitempty"`
	EmergencyPhone    string       `json:"emergency_phone,omitempty"`
	ProfilePictureURL string       `json:"profile_picture_url,omitempty"`
	Parent            *UserSummary `json:"parent,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// ChildSummary is the compact projection embedded in other responses.
type ChildSummary struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	AgeInYears  int       `json:"age_in_years"`
	AgeInMonths int       `json:"age_in_months"`
	Gender      string    `json:"gender"`
}

type ChildListItem struct {
	ChildResponse
	MedicalRecordsCount int64 `json:"medical_records_count"`
	AppointmentsCount   int64 `json:"appointments_count"`
}

type ChildListResponse struct {
	Children []ChildListItem `json:"children"`
	Total    int             `json:"total"`
}

type ChildDetailResponse struct {
	ChildResponse
	RecentMedicalRecords []MedicalRecordResponse `json:"recent_medical_records"`
	UpcomingAppointments []AppointmentResponse   `json:"upcoming_appointments"`
}

// Dashboard DTOs

type LastCheckup struct {
	RecordDate time.Time `json:"record_date"`
	DoctorName string    `json:"doctor_name,omitempty"`
}

type LastVaccination struct {
	Title      string    `json:"title"`
	RecordDate time.Time `json:"record_date"`
}

type DashboardHealthSummary struct {
	TotalMedicalRecords int64            `json:"total_medical_records"`
	LastCheckup         *LastCheckup     `json:"last_checkup,omitempty"`
	LastVaccination     *LastVaccination `json:"last_vaccination,omitempty"`
	ActiveAllergies     []string         `json:"active_allergies"`
	MedicalConditions   []string         `json:"medical_conditions"`
}

type DashboardActivityItem struct {
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	RecordType string    `json:"record_type"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

type GrowthMilestone struct {
	Milestone   string `json:"milestone"`
	ExpectedAge string `json:"expected_age"`
	Status      string `json:"status"`
}

type DashboardTip struct {
	Category string `json:"category"`
	Tip      string `json:"tip"`
	Priority string `json:"priority"`
}

type ChildDashboardResponse struct {
	Child                ChildSummary            `json:"child"`
	HealthSummary        DashboardHealthSummary  `json:"health_summary"`
	UpcomingAppointments []AppointmentResponse   `json:"upcoming_appointments"`
	RecentActivity       []DashboardActivityItem `json:"recent_activity"`
	GrowthMilestones     []GrowthMilestone       `json:"growth_milestones"`
	HealthTips           []DashboardTip          `json:"health_tips"`
}
