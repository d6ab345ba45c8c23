package repository

import (
	"context"
	"time"

	"famlink-api/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalRecordFilter narrows child record listings. Zero values mean no
// filtering on that dimension.
type MedicalRecordFilter struct {
	RecordType string
	FromDate   *time.Time
	ToDate     *time.Time
}

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *entity.MedicalRecord) error
	Update(ctx context.Context, record *entity.MedicalRecord) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error)
	// FindActiveWithChild preloads the owning child.
	FindActiveWithChild(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error)
	// FindActiveByChild returns one page ordered by record date descending
	// plus the total matching count.
	FindActiveByChild(ctx context.Context, childID uuid.UUID, filter MedicalRecordFilter, offset, limit int) ([]entity.MedicalRecord, int64, error)
	FindAllActiveByChild(ctx context.Context, childID uuid.UUID) ([]entity.MedicalRecord, error)
	CountActiveByChild(ctx context.Context, childID uuid.UUID) (int64, error)
}
