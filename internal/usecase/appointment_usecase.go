package usecase

import (
	"context"
	"errors"

	"famlink-api/internal/converter"
	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
	"famlink-api/internal/domain/repository"
	"famlink-api/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidUser         = errors.New("invalid user")
	ErrTimeSlotTaken       = errors.New("time slot already booked")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, hospitalID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	appointmentRepo repository.AppointmentRepository
	hospitalRepo    repository.HospitalRepository
	userRepo        repository.UserRepository
	childRepo       repository.ChildRepository
	clock           clock.Clock
}

func NewAppointmentUsecase(
	appointmentRepo repository.AppointmentRepository,
	hospitalRepo repository.HospitalRepository,
	userRepo repository.UserRepository,
	childRepo repository.ChildRepository,
	clk clock.Clock,
) AppointmentUsecase {
	return &appointmentUsecase{
		appointmentRepo: appointmentRepo,
		hospitalRepo:    hospitalRepo,
		userRepo:        userRepo,
		childRepo:       childRepo,
		clock:           clk,
	}
}

func (u *appointmentUsecase) Book(ctx context.Context, hospitalID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	hospital, err := u.hospitalRepo.FindActiveByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	user, err := u.userRepo.FindActiveByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidUser
	}

	var child *entity.Child
	if req.ChildID != nil {
		child, err = u.childRepo.FindActiveByID(ctx, *req.ChildID)
		if err != nil {
			return nil, err
		}
		if child == nil || child.ParentID != req.UserID {
			return nil, ErrInvalidChild
		}
	}

	taken, err := u.appointmentRepo.HasActiveAtTime(ctx, hospitalID, req.AppointmentDate)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTimeSlotTaken
	}

	appointment := &entity.Appointment{
		UserID:          req.UserID,
		ChildID:         req.ChildID,
		HospitalID:      hospitalID,
		DoctorName:      req.DoctorName,
		AppointmentDate: req.AppointmentDate,
		AppointmentType: req.AppointmentType,
		Status:          entity.AppointmentStatusScheduled,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	appointment.User = user
	appointment.Child = child
	appointment.Hospital = hospital

	return converter.AppointmentToResponse(appointment, u.clock.Now()), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment, u.clock.Now()), nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.Status = entity.AppointmentStatus(req.Status)
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment, u.clock.Now()), nil
}
