package repository

import (
	"context"
	"errors"
	"time"

	"famlink-api/internal/domain/entity"
	domainRepo "famlink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Child").
		Preload("Hospital").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) HasActiveAtTime(ctx context.Context, hospitalID uuid.UUID, at time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("hospital_id = ? AND appointment_date = ? AND status != ?",
			hospitalID, at, entity.AppointmentStatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) FindUpcomingByChild(ctx context.Context, childID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Hospital").
		Where("child_id = ? AND appointment_date > ? AND status != ?",
			childID, after, entity.AppointmentStatusCancelled).
		Order("appointment_date ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindRecentByChild(ctx context.Context, childID uuid.UUID, since time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Hospital").
		Where("child_id = ? AND created_at >= ?", childID, since).
		Order("created_at DESC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingByHospital(ctx context.Context, hospitalID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("hospital_id = ? AND appointment_date >= ?", hospitalID, after).
		Order("appointment_date ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountNonCancelledByChild(ctx context.Context, childID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("child_id = ? AND status != ?", childID, entity.AppointmentStatusCancelled).
		Count(&count).Error
	return count, err
}
