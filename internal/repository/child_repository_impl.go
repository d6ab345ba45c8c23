package repository

import (
	"context"
	"errors"

	"famlink-api/internal/domain/entity"
	domainRepo "famlink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type childRepository struct {
	db *gorm.DB
}

func NewChildRepository(db *gorm.DB) domainRepo.ChildRepository {
	return &childRepository{db: db}
}

func (r *childRepository) Create(ctx context.Context, child *entity.Child) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *childRepository) Update(ctx context.Context, child *entity.Child) error {
	return r.db.WithContext(ctx).Save(child).Error
}

func (r *childRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Child{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *childRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	var child entity.Child
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}

func (r *childRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	var child entity.Child
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}

func (r *childRepository) FindActiveWithParent(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	var child entity.Child
	err := r.db.WithContext(ctx).
		Preload("Parent").
		Where("id = ? AND is_active = ?", id, true).
		First(&child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}

func (r *childRepository) FindActiveByParentID(ctx context.Context, parentID uuid.UUID) ([]entity.Child, error) {
	var children []entity.Child
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND is_active = ?", parentID, true).
		Order("date_of_birth ASC").
		Find(&children).Error
	if err != nil {
		return nil, err
	}
	return children, nil
}
