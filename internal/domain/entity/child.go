package entity

import (
	"time"

	"github.com/google/uuid"
)

// Child belongs to exactly one parent User. Ages are derived from the
// birthdate and a caller-supplied reference time, never stored.
type Child struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ParentID          uuid.UUID `gorm:"type:uuid;not null;index" json:"parent_id"`
	FirstName         string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName          string    `gorm:"type:varchar(100);not null" json:"last_name"`
	DateOfBirth       time.Time `gorm:"not null" json:"date_of_birth"`
	Gender            string    `gorm:"type:varchar(10);not null" json:"gender"`
	BloodType         string    `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	Allergies         string    `gorm:"type:varchar(1000)" json:"allergies,omitempty"`
	MedicalConditions string    `gorm:"type:varchar(1000)" json:"medical_conditions,omitempty"`
	EmergencyContact  string    `gorm:"type:varchar(255)" json:"emergency_contact,omitempty"`
	EmergencyPhone    string    `gorm:"type:varchar(20)" json:"emergency_phone,omitempty"`
	ProfilePictureURL string    `gorm:"type:varchar(500)" json:"profile_picture_url,omitempty"`
	IsActive          bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Parent         *User           `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:ChildID" json:"medical_records,omitempty"`
	Appointments   []Appointment   `gorm:"foreignKey:ChildID" json:"appointments,omitempty"`
}

func (Child) TableName() string {
	return "children"
}

func (c *Child) FullName() string {
	return c.FirstName + " " + c.LastName
}

// AgeInYears returns whole years of age at the reference date, decremented by
// one when the birthday has not yet occurred that year.
func (c *Child) AgeInYears(today time.Time) int {
	years := today.Year() - c.DateOfBirth.Year()
	if c.DateOfBirth.AddDate(years, 0, 0).After(today) {
		years--
	}
	return years
}

// AgeInMonths returns total elapsed months at the reference date, decremented
// by one when the day-of-month has not yet been reached.
func (c *Child) AgeInMonths(today time.Time) int {
	months := (today.Year()-c.DateOfBirth.Year())*12 +
		int(today.Month()) - int(c.DateOfBirth.Month())
	if today.Day() < c.DateOfBirth.Day() {
		months--
	}
	return months
}
