package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Hospital is a directory entry. Appointments restrict hard deletion; the
// directory itself is only ever soft-disabled.
type Hospital struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:varchar(200);not null" json:"name"`
	Address     string     `gorm:"type:varchar(500);not null" json:"address"`
	City        string     `gorm:"type:varchar(100);not null;index" json:"city"`
	State       string     `gorm:"type:varchar(100);not null;index" json:"state"`
	ZipCode     string     `gorm:"type:varchar(20)" json:"zip_code,omitempty"`
	PhoneNumber string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Email       string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Website     string     `gorm:"type:varchar(500)" json:"website,omitempty"`
	Latitude    *float64   `gorm:"type:decimal(10,8)" json:"latitude,omitempty"`
	Longitude   *float64   `gorm:"type:decimal(11,8)" json:"longitude,omitempty"`
	Specialties StringList `gorm:"type:text" json:"specialties"`
	Rating      float64    `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	TotalReviews int       `gorm:"not null;default:0" json:"total_reviews"`
	IsActive    bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:HospitalID;constraint:OnDelete:RESTRICT" json:"appointments,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

func (h *Hospital) FullAddress() string {
	return strings.TrimSpace(fmt.Sprintf("%s, %s, %s %s", h.Address, h.City, h.State, h.ZipCode))
}

// HasCoordinates reports whether the hospital can participate in distance
// calculations.
func (h *Hospital) HasCoordinates() bool {
	return h.Latitude != nil && h.Longitude != nil
}

var CommonSpecialties = []string{
	"Pediatrics",
	"General Medicine",
	"Emergency Medicine",
	"Cardiology",
	"Neurology",
	"Orthopedics",
	"Dermatology",
	"ENT (Ear, Nose, Throat)",
	"Ophthalmology",
	"Dentistry",
	"Psychiatry",
	"Radiology",
	"Pathology",
	"Anesthesiology",
	"Surgery",
	"Obstetrics & Gynecology",
	"Urology",
	"Gastroenterology",
	"Pulmonology",
	"Endocrinology",
}
