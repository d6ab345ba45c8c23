package repository

import (
	"context"
	"errors"
	"strings"

	"famlink-api/internal/domain/entity"
	domainRepo "famlink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) domainRepo.HospitalRepository {
	return &hospitalRepository{db: db}
}

func (r *hospitalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindActive(ctx context.Context, filter domainRepo.HospitalFilter, offset, limit int) ([]entity.Hospital, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Hospital{}).
		Where("is_active = ?", true)

	if filter.City != "" {
		query = query.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(filter.City)+"%")
	}
	if filter.State != "" {
		query = query.Where("LOWER(state) LIKE ?", "%"+strings.ToLower(filter.State)+"%")
	}
	if filter.Specialty != "" {
		query = query.Where("specialties LIKE ?", "%"+filter.Specialty+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hospitals []entity.Hospital
	err := query.
		Order("rating DESC").
		Offset(offset).
		Limit(limit).
		Find(&hospitals).Error
	if err != nil {
		return nil, 0, err
	}
	return hospitals, total, nil
}

func (r *hospitalRepository) Search(ctx context.Context, query string, limit int) ([]entity.Hospital, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var hospitals []entity.Hospital
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(
			r.db.Where("LOWER(name) LIKE ?", pattern).
				Or("LOWER(city) LIKE ?", pattern).
				Or("LOWER(state) LIKE ?", pattern).
				Or("LOWER(specialties) LIKE ?", pattern),
		).
		Order("rating DESC").
		Limit(limit).
		Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}
