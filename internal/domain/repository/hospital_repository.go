package repository

import (
	"context"

	"famlink-api/internal/domain/entity"

	"github.com/google/uuid"
)

// HospitalFilter narrows directory listings. City and state are
// case-insensitive substring matches; Specialty is membership in the
// serialized specialty list.
type HospitalFilter struct {
	City      string
	State     string
	Specialty string
}

type HospitalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error)
	// FindActive returns one page ordered by rating descending plus the total
	// matching count.
	FindActive(ctx context.Context, filter HospitalFilter, offset, limit int) ([]entity.Hospital, int64, error)
	// Search matches name/city/state/specialties substrings, ordered by
	// rating descending, capped at limit.
	Search(ctx context.Context, query string, limit int) ([]entity.Hospital, error)
}
