package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateUserRequest struct {
	ExternalAuthID    string     `json:"external_auth_id" validate:"required,max=255"`
	Email             string     `json:"email" validate:"required,email,max=255"`
	FirstName         string     `json:"first_name" validate:"required,max=100"`
	LastName          string     `json:"last_name" validate:"required,max=100"`
	PhoneNumber       string     `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	ProfilePictureURL string     `json:"profile_picture_url,omitempty" validate:"omitempty,max=500"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Gender            string     `json:"gender,omitempty" validate:"omitempty,max=10"`
	Address           string     `json:"address,omitempty" validate:"omitempty,max=500"`
	City              string     `json:"city,omitempty" validate:"omitempty,max=100"`
	State             string     `json:"state,omitempty" validate:"omitempty,max=100"`
	ZipCode           string     `json:"zip_code,omitempty" validate:"omitempty,max=20"`
	Country           string     `json:"country,omitempty" validate:"omitempty,max=100"`
}

// UpdateUserRequest uses pointers so absent fields leave stored values alone.
type UpdateUserRequest struct {
	FirstName         *string    `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName          *string    `json:"last_name,omitempty" validate:"omitempty,max=100"`
	PhoneNumber       *string    `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty" validate:"omitempty,max=500"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Gender            *string    `json:"gender,omitempty" validate:"omitempty,max=10"`
	Address           *string    `json:"address,omitempty" validate:"omitempty,max=500"`
	City              *string    `json:"city,omitempty" validate:"omitempty,max=100"`
	State             *string    `json:"state,omitempty" validate:"omitempty,max=100"`
	ZipCode           *string    `json:"zip_code,omitempty" validate:"omitempty,max=20"`
	Country           *string    `json:"country,omitempty" validate:"omitempty,max=100"`
}

// Response DTOs

type UserResponse struct {
	ID                uuid.UUID      `json:"id"`
	ExternalAuthID    string         `json:"external_auth_id"`
	Email             string         `json:"email"`
	FirstName         string         `json:"first_name"`
	LastName          string         `json:"last_name"`
	FullName          string         `json:"full_name"`
	PhoneNumber       string         `json:"phone_number,omitempty"`
	ProfilePictureURL string         `json:"profile_picture_url,omitempty"`
	DateOfBirth       *time.Time     `json:"date_of_birth,omitempty"`
	Gender            string         `json:"gender,omitempty"`
	Address           string         `json:"address,omitempty"`
	City              string         `json:"city,omitempty"`
	State             string         `json:"state,omitempty"`
	ZipCode           string         `json:"zip_code,omitempty"`
	Country           string         `json:"country"`
	Children          []ChildSummary `json:"children,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// UserSummary is the compact projection embedded in other responses.
type UserSummary struct {
	ID                uuid.UUID `json:"id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
}

type UserListItem struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	Country       string    `json:"country"`
	ChildrenCount int       `json:"children_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type UserListResponse struct {
	Users []UserListItem `json:"users"`
	Total int            `json:"total"`
}
