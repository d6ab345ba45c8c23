package entity

import (
	"time"

	"github.com/google/uuid"
)

// Record types are an open enumeration; these are the well-known names
// surfaced by the types endpoint. Stored values are free text.
var MedicalRecordTypes = []string{
	"Vaccination",
	"Checkup",
	"Illness",
	"Surgery",
	"Allergy",
	"Prescription",
	"LabResult",
	"Imaging",
	"Emergency",
	"Other",
}

const (
	RecordTypeVaccination = "Vaccination"
	RecordTypeCheckup     = "Checkup"
)

// MedicalRecord belongs to one Child. Attachment URLs are persisted as a
// serialized text column and exposed as a list.
type MedicalRecord struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ChildID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"child_id"`
	RecordType     string     `gorm:"type:varchar(50);not null;index" json:"record_type"`
	Title          string     `gorm:"type:varchar(200);not null" json:"title"`
	Description    string     `gorm:"type:varchar(2000)" json:"description,omitempty"`
	DoctorName     string     `gorm:"type:varchar(200)" json:"doctor_name,omitempty"`
	HospitalName   string     `gorm:"type:varchar(200)" json:"hospital_name,omitempty"`
	RecordDate     time.Time  `gorm:"not null;index" json:"record_date"`
	Medications    string     `gorm:"type:varchar(1000)" json:"medications,omitempty"`
	Notes          string     `gorm:"type:varchar(2000)" json:"notes,omitempty"`
	AttachmentURLs StringList `gorm:"type:text" json:"attachment_urls"`
	IsActive       bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Child *Child `gorm:"foreignKey:ChildID" json:"child,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
