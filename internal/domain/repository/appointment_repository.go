package repository

import (
	"context"
	"time"

	"famlink-api/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	Update(ctx context.Context, appointment *entity.Appointment) error
	// FindByID preloads user, child and hospital.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// HasActiveAtTime reports whether a non-cancelled appointment exists for
	// the hospital at exactly the given timestamp.
	HasActiveAtTime(ctx context.Context, hospitalID uuid.UUID, at time.Time) (bool, error)
	// FindUpcomingByChild returns non-cancelled appointments after the given
	// time, ordered by date ascending, with hospitals preloaded.
	FindUpcomingByChild(ctx context.Context, childID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error)
	// FindRecentByChild returns appointments created at or after the given
	// time, ordered by creation descending, with hospitals preloaded.
	FindRecentByChild(ctx context.Context, childID uuid.UUID, since time.Time, limit int) ([]entity.Appointment, error)
	FindUpcomingByHospital(ctx context.Context, hospitalID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error)
	CountNonCancelledByChild(ctx context.Context, childID uuid.UUID) (int64, error)
}
