package converter

import (
	"time"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User, now time.Time) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:                user.ID,
		ExternalAuthID:    user.ExternalAuthID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		FullName:          user.FullName(),
		PhoneNumber:       user.PhoneNumber,
		ProfilePictureURL: user.ProfilePictureURL,
		DateOfBirth:       user.DateOfBirth,
		Gender:            user.Gender,
		Address:           user.Address,
		City:              user.City,
		State:             user.State,
		ZipCode:           user.ZipCode,
		Country:           user.Country,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}

	if len(user.Children) > 0 {
		response.Children = make([]dto.ChildSummary, len(user.Children))
		for i, child := range user.Children {
			response.Children[i] = *ChildToSummary(&child, now)
		}
	}

	return response
}

// UserToSummary converts a User entity to the compact UserSummary DTO
func UserToSummary(user *entity.User) *dto.UserSummary {
	if user == nil {
		return nil
	}
	return &dto.UserSummary{
		ID:                user.ID,
		FullName:          user.FullName(),
		Email:             user.Email,
		ProfilePictureURL: user.ProfilePictureURL,
	}
}

// UsersToListItems converts a slice of User entities to UserListItem DTOs
func UsersToListItems(users []entity.User) []dto.UserListItem {
	items := make([]dto.UserListItem, len(users))
	for i, user := range users {
		items[i] = dto.UserListItem{
			ID:            user.ID,
			Email:         user.Email,
			FullName:      user.FullName(),
			City:          user.City,
			State:         user.State,
			Country:       user.Country,
			ChildrenCount: len(user.Children),
			CreatedAt:     user.CreatedAt,
		}
	}
	return items
}
