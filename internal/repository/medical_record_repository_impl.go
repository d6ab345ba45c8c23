package repository

import (
	"context"
	"errors"

	"famlink-api/internal/domain/entity"
	domainRepo "famlink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepository(db *gorm.DB) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *entity.MedicalRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *medicalRecordRepository) Update(ctx context.Context, record *entity.MedicalRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *medicalRecordRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.MedicalRecord{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *medicalRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindActiveWithChild(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Preload("Child").
		Where("id = ? AND is_active = ?", id, true).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindActiveByChild(ctx context.Context, childID uuid.UUID, filter domainRepo.MedicalRecordFilter, offset, limit int) ([]entity.MedicalRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.MedicalRecord{}).
		Where("child_id = ? AND is_active = ?", childID, true)

	if filter.RecordType != "" {
		query = query.Where("record_type = ?", filter.RecordType)
	}
	if filter.FromDate != nil {
		query = query.Where("record_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("record_date <= ?", *filter.ToDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []entity.MedicalRecord
	err := query.
		Order("record_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *medicalRecordRepository) FindAllActiveByChild(ctx context.Context, childID uuid.UUID) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Where("child_id = ? AND is_active = ?", childID, true).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) CountActiveByChild(ctx context.Context, childID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.MedicalRecord{}).
		Where("child_id = ? AND is_active = ?", childID, true).
		Count(&count).Error
	return count, err
}
