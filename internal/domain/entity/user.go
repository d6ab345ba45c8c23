package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a parent account. Identity is managed by an external auth
// provider; only its subject id is stored here.
type User struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ExternalAuthID    string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"external_auth_id"`
	Email             string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName         string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName          string     `gorm:"type:varchar(100);not null" json:"last_name"`
	PhoneNumber       string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	ProfilePictureURL string     `gorm:"type:varchar(500)" json:"profile_picture_url,omitempty"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Gender            string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Address           string     `gorm:"type:varchar(500)" json:"address,omitempty"`
	City              string     `gorm:"type:varchar(100)" json:"city,omitempty"`
	State             string     `gorm:"type:varchar(100)" json:"state,omitempty"`
	ZipCode           string     `gorm:"type:varchar(20)" json:"zip_code,omitempty"`
	Country           string     `gorm:"type:varchar(100);not null;default:'India'" json:"country"`
	IsActive          bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Children []Child `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
