package usecase

import (
	"context"
	"errors"
	"time"

	"famlink-api/internal/converter"
	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
	"famlink-api/internal/domain/repository"
	"famlink-api/internal/service"
	"famlink-api/pkg/clock"

	"github.com/google/uuid"
)

var ErrConversationNotFound = errors.New("conversation not found")

const defaultConversationPageSize = 10

type ChatbotUsecase interface {
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) (*dto.ConversationListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ConversationResponse, error)
	Start(ctx context.Context, req *dto.StartConversationRequest) (*dto.ConversationResponse, error)
	SendMessage(ctx context.Context, id uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	HealthTips(ageInMonths *int) *dto.HealthTipsResponse
}

type chatbotUsecase struct {
	conversationRepo repository.ChatConversationRepository
	userRepo         repository.UserRepository
	childRepo        repository.ChildRepository
	responder        service.Responder
	clock            clock.Clock
}

func NewChatbotUsecase(
	conversationRepo repository.ChatConversationRepository,
	userRepo repository.UserRepository,
	childRepo repository.ChildRepository,
	responder service.Responder,
	clk clock.Clock,
) ChatbotUsecase {
	return &chatbotUsecase{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		childRepo:        childRepo,
		responder:        responder,
		clock:            clk,
	}
}

func (u *chatbotUsecase) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) (*dto.ConversationListResponse, error) {
	user, err := u.userRepo.FindActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultConversationPageSize
	}
	offset := (page - 1) * pageSize

	conversations, total, err := u.conversationRepo.FindActiveByUser(ctx, userID, offset, pageSize)
	if err != nil {
		return nil, err
	}

	return &dto.ConversationListResponse{
		Conversations: converter.ConversationsToListItems(conversations, u.clock.Now()),
		PageMeta:      dto.NewPageMeta(total, page, pageSize),
	}, nil
}

func (u *chatbotUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ConversationResponse, error) {
	conversation, err := u.conversationRepo.FindActiveWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}

	return converter.ConversationToResponse(conversation, u.clock.Now()), nil
}

func (u *chatbotUsecase) Start(ctx context.Context, req *dto.StartConversationRequest) (*dto.ConversationResponse, error) {
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

	now := u.clock.Now()

	conversation := &entity.ChatConversation{
		UserID:    req.UserID,
		ChildID:   req.ChildID,
		SessionID: uuid.New().String(),
		Messages: entity.ChatMessages{
			{
				Role:      entity.ChatRoleSystem,
				Content:   u.responder.SystemPrompt(u.childContext(child, now)),
				Timestamp: now,
			},
		},
		IsActive: true,
	}

	if err := u.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, err
	}

	conversation.User = user
	conversation.Child = child

	return converter.ConversationToResponse(conversation, now), nil
}

func (u *chatbotUsecase) SendMessage(ctx context.Context, id uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	conversation, err := u.conversationRepo.FindActiveWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}

	now := u.clock.Now()

	userMessage := entity.ChatMessage{
		Role:      entity.ChatRoleUser,
		Content:   req.Message,
		Timestamp: now,
	}
	conversation.Messages = append(conversation.Messages, userMessage)

	reply, err := u.responder.Reply(ctx, req.Message, u.childContext(conversation.Child, now))
	if err != nil {
		return nil, err
	}

	assistantMessage := entity.ChatMessage{
		Role:      entity.ChatRoleAssistant,
		Content:   reply.Content,
		Timestamp: u.clock.Now(),
		Evidence:  reply.Evidence,
		Sources:   reply.Sources,
	}
	conversation.Messages = append(conversation.Messages, assistantMessage)

	if err := u.conversationRepo.Update(ctx, conversation); err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{
		UserMessage:      *converter.ChatMessageToResponse(&userMessage),
		AssistantMessage: *converter.ChatMessageToResponse(&assistantMessage),
		ConversationID:   conversation.ID,
		SessionID:        conversation.SessionID,
	}, nil
}

func (u *chatbotUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	conversation, err := u.conversationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if conversation == nil {
		return ErrConversationNotFound
	}

	return u.conversationRepo.SoftDelete(ctx, id)
}

func (u *chatbotUsecase) HealthTips(ageInMonths *int) *dto.HealthTipsResponse {
	tips := u.responder.HealthTips(ageInMonths)

	out := make([]dto.HealthTip, len(tips))
	for i, tip := range tips {
		out[i] = dto.HealthTip{Category: tip.Category, Tip: tip.Tip, AgeGroup: tip.AgeGroup}
	}
	return &dto.HealthTipsResponse{Tips: out}
}

func (u *chatbotUsecase) childContext(child *entity.Child, now time.Time) *service.ChildContext {
	if child == nil {
		return nil
	}
	return &service.ChildContext{
		FirstName:         child.FirstName,
		AgeInYears:        child.AgeInYears(now),
		AgeInMonths:       child.AgeInMonths(now),
		Gender:            child.Gender,
		Allergies:         child.Allergies,
		MedicalConditions: child.MedicalConditions,
	}
}
