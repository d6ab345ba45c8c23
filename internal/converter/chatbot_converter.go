package converter

import (
	"time"

	"famlink-api/internal/delivery/dto"
	"famlink-api/internal/domain/entity"
)

// ChatMessageToResponse converts a ChatMessage to its response DTO
func ChatMessageToResponse(message *entity.ChatMessage) *dto.ChatMessageResponse {
	if message == nil {
		return nil
	}
	return &dto.ChatMessageResponse{
		Role:      message.Role,
		Content:   message.Content,
		Timestamp: message.Timestamp,
		Evidence:  message.Evidence,
		Sources:   message.Sources,
	}
}

// ConversationToResponse converts a ChatConversation entity to its full DTO
func ConversationToResponse(conversation *entity.ChatConversation, now time.Time) *dto.ConversationResponse {
	if conversation == nil {
		return nil
	}

	messages := make([]dto.ChatMessageResponse, len(conversation.Messages))
	for i := range conversation.Messages {
		messages[i] = *ChatMessageToResponse(&conversation.Messages[i])
	}

	response := &dto.ConversationResponse{
		ID:           conversation.ID,
		UserID:       conversation.UserID,
		ChildID:      conversation.ChildID,
		SessionID:    conversation.SessionID,
		Messages:     messages,
		MessageCount: conversation.MessageCount(),
		CreatedAt:    conversation.CreatedAt,
		UpdatedAt:    conversation.UpdatedAt,
	}

	if conversation.User != nil {
		response.User = UserToSummary(conversation.User)
	}
	if conversation.Child != nil {
		response.Child = ChildToSummary(conversation.Child, now)
	}

	return response
}

// ConversationsToListItems converts conversations to their compact list form
func ConversationsToListItems(conversations []entity.ChatConversation, now time.Time) []dto.ConversationListItem {
	items := make([]dto.ConversationListItem, len(conversations))
	for i := range conversations {
		conversation := &conversations[i]
		items[i] = dto.ConversationListItem{
			ID:              conversation.ID,
			SessionID:       conversation.SessionID,
			MessageCount:    conversation.MessageCount(),
			LastMessage:     ChatMessageToResponse(conversation.LastMessage()),
			LastMessageTime: conversation.LastMessageTime(),
			CreatedAt:       conversation.CreatedAt,
		}
		if conversation.Child != nil {
			items[i].Child = ChildToSummary(conversation.Child, now)
		}
	}
	return items
}
