package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChatMessagesRoundTrip(t *testing.T) {
	ts := time.Date(2026, time.January, 10, 9, 30, 0, 0, time.UTC)
	original := ChatMessages{
		{Role: ChatRoleSystem, Content: "context", Timestamp: ts},
		{
			Role:      ChatRoleAssistant,
			Content:   "answer",
			Timestamp: ts.Add(time.Minute),
			Evidence:  "guidelines",
			Sources:   []string{"AAP"},
		},
	}

	value, err := original.Value()
	assert.NoError(t, err)

	var scanned ChatMessages
	err = scanned.Scan(value)

	assert.NoError(t, err)
	assert.Equal(t, original, scanned)
}

func TestChatMessagesScanMalformed(t *testing.T) {
	var messages ChatMessages
	err := messages.Scan("not json at all")

	assert.NoError(t, err)
	assert.Empty(t, messages)
	assert.NotNil(t, messages)
}

func TestConversationLastMessage(t *testing.T) {
	created := time.Date(2026, time.February, 1, 8, 0, 0, 0, time.UTC)

	t.Run("empty log falls back to creation time", func(t *testing.T) {
		conversation := &ChatConversation{CreatedAt: created}

		assert.Nil(t, conversation.LastMessage())
		assert.Equal(t, created, conversation.LastMessageTime())
	})

	t.Run("returns max timestamp regardless of order", func(t *testing.T) {
		conversation := &ChatConversation{
			CreatedAt: created,
			Messages: ChatMessages{
				{Role: ChatRoleUser, Content: "later", Timestamp: created.Add(2 * time.Hour)},
				{Role: ChatRoleAssistant, Content: "earlier", Timestamp: created.Add(time.Hour)},
			},
		}

		assert.Equal(t, created.Add(2*time.Hour), conversation.LastMessageTime())
		assert.Equal(t, "earlier", conversation.LastMessage().Content)
		assert.Equal(t, 2, conversation.MessageCount())
	})
}
