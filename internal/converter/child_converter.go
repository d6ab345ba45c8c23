package converter

import (
	"time"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
)

// ChildToResponse converts a Child entity to ChildResponse DTO. Ages are
// derived from the supplied reference time.
func ChildToResponse(child *entity.Child, now time.Time) *dto.ChildResponse {
	if child == nil {
		return nil
	}

	response := &dto.ChildResponse{
		ID:                child.ID,
		ParentID:          child.ParentID,
		FirstName:         child.FirstName,
		LastName:          child.LastName,
		FullName:          child.FullName(),
		DateOfBirth:       child.DateOfBirth,
		AgeInYears:        child.AgeInYears(now),
		AgeInMonths:       child.AgeInMonths(now),
		Gender:            child.Gender,
		BloodType:         child.BloodType,
		Allergies:         child.Allergies,
		MedicalConditions: child.MedicalConditions,
		EmergencyContact:  child.EmergencyContact,
		EmergencyPhone:    child.EmergencyPhone,
		ProfilePictureURL: child.ProfilePictureURL,
		CreatedAt:         child.CreatedAt,
		UpdatedAt:         child.UpdatedAt,
	}

	if child.Parent != nil {
		response.Parent = UserToSummary(child.Parent)
	}

	return response
}

// ChildToSummary converts a Child entity to the compact ChildSummary DTO
func ChildToSummary(child *entity.Child, now time.Time) *dto.ChildSummary {
	if child == nil {
		return nil
	}
	return &dto.ChildSummary{
		ID:          child.ID,
		FullName:    child.FullName(),
		DateOfBirth: child.DateOfBirth,
		AgeInYears:  child.AgeInYears(now),
		AgeInMonths: child.AgeInMonths(now),
		Gender:      child.Gender,
	}
}
