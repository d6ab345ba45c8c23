package converter

import (
	"testing"
	"time"

	"famlink-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConversationToResponse(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil conversation", func(t *testing.T) {
		assert.Nil(t, ConversationToResponse(nil, now))
	})

	t.Run("maps messages and relations", func(t *testing.T) {
		conversation := &entity.ChatConversation{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			SessionID: "session-1",
			Messages: entity.ChatMessages{
				{Role: entity.ChatRoleSystem, Content: "context", Timestamp: now.Add(-time.Hour)},
				{Role: entity.ChatRoleUser, Content: "hello", Timestamp: now},
			},
			User: &entity.User{ID: uuid.New(), FirstName: "Priya", LastName: "Patel"},
			Child: &entity.Child{
				ID:          uuid.New(),
				FirstName:   "Aarav",
				LastName:    "Patel",
				DateOfBirth: now.AddDate(-2, 0, 0),
			},
		}

		resp := ConversationToResponse(conversation, now)

		assert.Equal(t, 2, resp.MessageCount)
		assert.Len(t, resp.Messages, 2)
		assert.Equal(t, "hello", resp.Messages[1].Content)
		assert.Equal(t, "Priya Patel", resp.User.FullName)
		assert.Equal(t, 2, resp.Child.AgeInYears)
	})
}

func TestConversationsToListItems(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	created := now.Add(-2 * time.Hour)

	t.Run("empty conversation falls back to creation time", func(t *testing.T) {
		items := ConversationsToListItems([]entity.ChatConversation{
			{ID: uuid.New(), SessionID: "s", CreatedAt: created},
		}, now)

		assert.Len(t, items, 1)
		assert.Nil(t, items[0].LastMessage)
		assert.Equal(t, created, items[0].LastMessageTime)
		assert.Equal(t, 0, items[0].MessageCount)
	})

	t.Run("uses latest message timestamp", func(t *testing.T) {
		items := ConversationsToListItems([]entity.ChatConversation{
			{
				ID:        uuid.New(),
				SessionID: "s",
				CreatedAt: created,
				Messages: entity.ChatMessages{
					{Role: entity.ChatRoleUser, Content: "hi", Timestamp: created.Add(time.Minute)},
					{Role: entity.ChatRoleAssistant, Content: "hello", Timestamp: created.Add(2 * time.Minute)},
				},
			},
		}, now)

		assert.Equal(t, "hello", items[0].LastMessage.Content)
		assert.Equal(t, created.Add(2*time.Minute), items[0].LastMessageTime)
		assert.Equal(t, 2, items[0].MessageCount)
	})
}
