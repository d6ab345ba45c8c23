package repository

import (
	"context"
	"errors"

	"famlink-api/internal/domain/entity"
	domainRepo "famlink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type chatConversationRepository struct {
	db *gorm.DB
}

func NewChatConversationRepository(db *gorm.DB) domainRepo.ChatConversationRepository {
	return &chatConversationRepository{db: db}
}

func (r *chatConversationRepository) Create(ctx context.Context, conversation *entity.ChatConversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *chatConversationRepository) Update(ctx context.Context, conversation *entity.ChatConversation) error {
	return r.db.WithContext(ctx).Save(conversation).Error
}

func (r *chatConversationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.ChatConversation{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *chatConversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error) {
	var conversation entity.ChatConversation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *chatConversationRepository) FindActiveWithRelations(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error) {
	var conversation entity.ChatConversation
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Child").
		Where("id = ? AND is_active = ?", id, true).
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *chatConversationRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entity.ChatConversation, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.ChatConversation{}).
		Where("user_id = ? AND is_active = ?", userID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var conversations []entity.ChatConversation
	err := query.
		Preload("Child").
		Order("updated_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&conversations).Error
	if err != nil {
		return nil, 0, err
	}
	return conversations, total, nil
}
