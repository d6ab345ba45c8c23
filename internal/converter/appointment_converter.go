package converter

import (
	"time"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// Upcoming/past flags are derived from the supplied reference time.
func AppointmentToResponse(appointment *entity.Appointment, now time.Time) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		UserID:          appointment.UserID,
		ChildID:         appointment.ChildID,
		HospitalID:      appointment.HospitalID,
		DoctorName:      appointment.DoctorName,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentType: appointment.AppointmentType,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		IsUpcoming:      appointment.IsUpcoming(now),
		IsPast:          appointment.IsPast(now),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.User != nil {
		response.User = UserToSummary(appointment.User)
	}
	if appointment.Child != nil {
		response.Child = ChildToSummary(appointment.Child, now)
	}
	if appointment.Hospital != nil {
		response.Hospital = HospitalToResponse(appointment.Hospital)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment, now time.Time) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment, now)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
