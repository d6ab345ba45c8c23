package entity

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "Scheduled"
	AppointmentStatusConfirmed  AppointmentStatus = "Confirmed"
	AppointmentStatusInProgress AppointmentStatus = "InProgress"
	AppointmentStatusCompleted  AppointmentStatus = "Completed"
	AppointmentStatusCancelled  AppointmentStatus = "Cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "NoShow"
)

// Appointment belongs to one User, optionally one Child, and exactly one
// Hospital.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	ChildID         *uuid.UUID        `gorm:"type:uuid;index" json:"child_id,omitempty"`
	HospitalID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"hospital_id"`
	DoctorName      string            `gorm:"type:varchar(200)" json:"doctor_name,omitempty"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	AppointmentType string            `gorm:"type:varchar(100);not null" json:"appointment_type"`
	Status          AppointmentStatus `gorm:"type:varchar(50);not null;default:'Scheduled';index" json:"status"`
	Notes           string            `gorm:"type:varchar(1000)" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Child    *Child    `gorm:"foreignKey:ChildID" json:"child,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsUpcoming reports whether the appointment lies in the future and has not
// been cancelled or completed.
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return a.AppointmentDate.After(now) &&
		a.Status != AppointmentStatusCancelled &&
		a.Status != AppointmentStatusCompleted
}

// IsPast reports whether the appointment date has passed or it completed.
func (a *Appointment) IsPast(now time.Time) bool {
	return !a.AppointmentDate.After(now) || a.Status == AppointmentStatusCompleted
}
