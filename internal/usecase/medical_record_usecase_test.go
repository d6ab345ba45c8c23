package usecase

import (
	"context"
	"testing"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
	"famlink-api/internal/domain/repository"
	"famlink-api/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMedicalRecordUsecaseCreate(t *testing.T) {
	t.Run("rejects unknown child", func(t *testing.T) {
		childRepo := &MockChildRepository{
			FindActiveByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
				return nil, nil
			},
		}

		uc := NewMedicalRecordUsecase(&MockMedicalRecordRepository{}, childRepo, clock.Fixed(testNow))
		resp, err := uc.Create(context.Background(), &dto.CreateMedicalRecordRequest{
			ChildID:    uuid.New(),
			RecordType: entity.RecordTypeCheckup,
			Title:      "Annual Checkup",
			RecordDate: testNow,
		})

		assert.ErrorIs(t, err, ErrInvalidChild)
		assert.Nil(t, resp)
	})

	t.Run("creates record and normalizes attachments", func(t *testing.T) {
		childRepo := &MockChildRepository{
			FindActiveByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
				return &entity.Child{ID: id, IsActive: true}, nil
			},
		}
		recordRepo := &MockMedicalRecordRepository{
			CreateFunc: func(ctx context.Context, record *entity.MedicalRecord) error {
				record.ID = uuid.New()
				return nil
			},
		}

		uc := NewMedicalRecordUsecase(recordRepo, childRepo, clock.Fixed(testNow))
		resp, err := uc.Create(context.Background(), &dto.CreateMedicalRecordRequest{
			ChildID:    uuid.New(),
			RecordType: entity.RecordTypeCheckup,
			Title:      "Annual Checkup",
			RecordDate: testNow,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Annual Checkup", resp.Title)
		assert.NotNil(t, resp.AttachmentURLs)
		assert.Empty(t, resp.AttachmentURLs)
	})
}

func TestMedicalRecordUsecaseGetByChild(t *testing.T) {
	childRepo := &MockChildRepository{
		FindActiveByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
			return &entity.Child{ID: id, IsActive: true}, nil
		},
	}

	t.Run("defaults page and page size", func(t *testing.T) {
		recordRepo := &MockMedicalRecordRepository{
			FindActiveByChildFunc: func(ctx context.Context, childID uuid.UUID, filter repository.MedicalRecordFilter, offset, limit int) ([]entity.MedicalRecord, int64, error) {
				assert.Equal(t, 0, offset)
				assert.Equal(t, 20, limit)
				return []entity.MedicalRecord{{ID: uuid.New(), Title: "Checkup"}}, 45, nil
			},
		}

		uc := NewMedicalRecordUsecase(recordRepo, childRepo, clock.Fixed(testNow))
		resp, err := uc.GetByChild(context.Background(), uuid.New(), repository.MedicalRecordFilter{}, 0, 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(45), resp.TotalCount)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PageSize)
		assert.Equal(t, 3, resp.TotalPages)
	})

	t.Run("computes offset from page", func(t *testing.T) {
		recordRepo := &MockMedicalRecordRepository{
			FindActiveByChildFunc: func(ctx context.Context, childID uuid.UUID, filter repository.MedicalRecordFilter, offset, limit int) ([]entity.MedicalRecord, int64, error) {
				assert.Equal(t, 10, offset)
				assert.Equal(t, 5, limit)
				return nil, 12, nil
			},
		}

		uc := NewMedicalRecordUsecase(recordRepo, childRepo, clock.Fixed(testNow))
		resp, err := uc.GetByChild(context.Background(), uuid.New(), repository.MedicalRecordFilter{}, 3, 5)

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Page)
	})

	t.Run("rejects unknown child", func(t *testing.T) {
		missingChildRepo := &MockChildRepository{
			FindActiveByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
				return nil, nil
			},
		}

		uc := NewMedicalRecordUsecase(&MockMedicalRecordRepository{}, missingChildRepo, clock.Fixed(testNow))
		_, err := uc.GetByChild(context.Background(), uuid.New(), repository.MedicalRecordFilter{}, 1, 20)

		assert.ErrorIs(t, err, ErrChildNotFound)
	})
}

func TestMedicalRecordUsecaseUpdate(t *testing.T) {
	t.Run("inactive record maps to not found", func(t *testing.T) {
		recordRepo := &MockMedicalRecordRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
				return &entity.MedicalRecord{ID: id, IsActive: false}, nil
			},
		}

		uc := NewMedicalRecordUsecase(recordRepo, &MockChildRepository{}, clock.Fixed(testNow))
		_, err := uc.Update(context.Background(), uuid.New(), &dto.UpdateMedicalRecordRequest{})

		assert.ErrorIs(t, err, ErrMedicalRecordNotFound)
	})

	t.Run("replaces attachment list when provided", func(t *testing.T) {
		var updated *entity.MedicalRecord
		recordRepo := &MockMedicalRecordRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
				return &entity.MedicalRecord{
					ID:             id,
					Title:          "Old",
					AttachmentURLs: entity.StringList{"a.pdf"},
					IsActive:       true,
				}, nil
			},
			UpdateFunc: func(ctx context.Context, record *entity.MedicalRecord) error {
				updated = record
				return nil
			},
		}

		urls := []string{"b.pdf", "c.pdf"}
		uc := NewMedicalRecordUsecase(recordRepo, &MockChildRepository{}, clock.Fixed(testNow))
		resp, err := uc.Update(context.Background(), uuid.New(), &dto.UpdateMedicalRecordRequest{AttachmentURLs: &urls})

		assert.NoError(t, err)
		assert.Equal(t, entity.StringList{"b.pdf", "c.pdf"}, updated.AttachmentURLs)
		assert.Equal(t, "Old", resp.Title)
	})
}

func TestMedicalRecordUsecaseSummary(t *testing.T) {
	childRepo := &MockChildRepository{
		FindActiveByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
			return &entity.Child{ID: id, IsActive: true}, nil
		},
	}

	records := []entity.MedicalRecord{
		{RecordType: entity.RecordTypeVaccination, Title: "Polio", RecordDate: testNow.AddDate(0, -4, 0)},
		{RecordType: entity.RecordTypeVaccination, Title: "MMR", RecordDate: testNow.AddDate(0, -1, 0)},
		{RecordType: entity.RecordTypeCheckup, Title: "Annual", RecordDate: testNow.AddDate(0, -2, 0)},
		{RecordType: "Illness", Title: "Flu", RecordDate: testNow.AddDate(0, -3, 0)},
		{RecordType: "Illness", Title: "Cold", RecordDate: testNow.AddDate(0, -5, 0)},
		{RecordType: "Illness", Title: "Cough", RecordDate: testNow.AddDate(0, -6, 0)},
	}
	recordRepo := &MockMedicalRecordRepository{
		FindAllActiveByChildFunc: func(ctx context.Context, childID uuid.UUID) ([]entity.MedicalRecord, error) {
			return records, nil
		},
	}

	uc := NewMedicalRecordUsecase(recordRepo, childRepo, clock.Fixed(testNow))
	resp, err := uc.Summary(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, 6, resp.TotalRecords)

	assert.Equal(t, []dto.RecordTypeCount{
		{RecordType: "Illness", Count: 3},
		{RecordType: entity.RecordTypeVaccination, Count: 2},
		{RecordType: entity.RecordTypeCheckup, Count: 1},
	}, resp.RecordsByType)

	assert.Len(t, resp.RecentRecords, 5)
	assert.Equal(t, "MMR", resp.RecentRecords[0].Title)

	assert.Equal(t, testNow.AddDate(0, -1, 0), *resp.LastVaccinationDate)
	assert.Equal(t, testNow.AddDate(0, -2, 0), *resp.LastCheckupDate)
}

func TestMedicalRecordUsecaseTypes(t *testing.T) {
	uc := NewMedicalRecordUsecase(&MockMedicalRecordRepository{}, &MockChildRepository{}, clock.Fixed(testNow))

	types := uc.Types()

	assert.Contains(t, types, entity.RecordTypeVaccination)
	assert.Contains(t, types, entity.RecordTypeCheckup)
	assert.Contains(t, types, "Other")
}
