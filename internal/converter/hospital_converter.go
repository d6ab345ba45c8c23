package converter

import (
	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	response := &dto.HospitalResponse{
		ID:           hospital.ID,
		Name:         hospital.Name,
		Address:      hospital.Address,
		City:         hospital.City,
		State:        hospital.State,
		ZipCode:      hospital.ZipCode,
		FullAddress:  hospital.FullAddress(),
		PhoneNumber:  hospital.PhoneNumber,
		Email:        hospital.Email,
		Website:      hospital.Website,
		Latitude:     hospital.Latitude,
		Longitude:    hospital.Longitude,
		Specialties:  hospital.Specialties,
		Rating:       hospital.Rating,
		TotalReviews: hospital.TotalReviews,
		CreatedAt:    hospital.CreatedAt,
		UpdatedAt:    hospital.UpdatedAt,
	}
	if response.Specialties == nil {
		response.Specialties = []string{}
	}

	return response
}

// HospitalsToResponses converts a slice of Hospital entities
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i, hospital := range hospitals {
		resp := HospitalToResponse(&hospital)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
