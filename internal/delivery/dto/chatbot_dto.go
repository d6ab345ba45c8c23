package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type StartConversationRequest struct {
	UserID  uuid.UUID  `json:"user_id" validate:"required"`
	ChildID *uuid.UUID `json:"child_id,omitempty"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// Response DTOs

type ChatMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Evidence  string    `json:"evidence,omitempty"`
	Sources   []string  `json:"sources,omitempty"`
}

type ConversationResponse struct {
	ID           uuid.UUID             `json:"id"`
	UserID       uuid.UUID             `json:"user_id"`
	ChildID      *uuid.UUID            `json:"child_id,omitempty"`
	SessionID    string                `json:"session_id"`
	Messages     []ChatMessageResponse `json:"messages"`
	MessageCount int                   `json:"message_count"`
	User         *UserSummary          `json:"user,omitempty"`
	Child        *ChildSummary         `json:"child,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type ConversationListItem struct {
	ID              uuid.UUID            `json:"id"`
	SessionID       string               `json:"session_id"`
	Child           *ChildSummary        `json:"child,omitempty"`
	MessageCount    int                  `json:"message_count"`
	LastMessage     *ChatMessageResponse `json:"last_message,omitempty"`
	LastMessageTime time.Time            `json:"last_message_time"`
	CreatedAt       time.Time            `json:"created_at"`
}

type ConversationListResponse struct {
	Conversations []ConversationListItem `json:"conversations"`
	PageMeta
}

type SendMessageResponse struct {
	UserMessage      ChatMessageResponse `json:"user_message"`
	AssistantMessage ChatMessageResponse `json:"assistant_message"`
	ConversationID   uuid.UUID           `json:"conversation_id"`
	SessionID        string              `json:"session_id"`
}

type HealthTip struct {
	Category string `json:"category"`
	Tip      string `json:"tip"`
	AgeGroup string `json:"age_group"`
}

type HealthTipsResponse struct {
	Tips []HealthTip `json:"tips"`
}
