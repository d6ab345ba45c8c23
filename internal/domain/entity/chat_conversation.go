package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one entry in a conversation's serialized message log.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Evidence  string    `json:"evidence,omitempty"`
	Sources   []string  `json:"sources,omitempty"`
}

// ChatMessages stores the ordered message log as a JSON text column.
// Malformed column data reads back as an empty log.
type ChatMessages []ChatMessage

func (m ChatMessages) Value() (driver.Value, error) {
	if m == nil {
		m = ChatMessages{}
	}
	data, err := json.Marshal([]ChatMessage(m))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *ChatMessages) Scan(src interface{}) error {
	*m = ChatMessages{}

	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil
	}

	if len(data) == 0 {
		return nil
	}

	var messages []ChatMessage
	if err := json.Unmarshal(data, &messages); err != nil || messages == nil {
		return nil
	}

	*m = messages
	return nil
}

// ChatConversation belongs to one User and optionally one Child.
type ChatConversation struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	ChildID   *uuid.UUID   `gorm:"type:uuid;index" json:"child_id,omitempty"`
	SessionID string       `gorm:"type:varchar(255);not null" json:"session_id"`
	Messages  ChatMessages `gorm:"type:text;not null" json:"messages"`
	IsActive  bool         `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Child *Child `gorm:"foreignKey:ChildID" json:"child,omitempty"`
}

func (ChatConversation) TableName() string {
	return "chat_conversations"
}

func (c *ChatConversation) MessageCount() int {
	return len(c.Messages)
}

// LastMessage returns the final message in the log, or nil when empty.
func (c *ChatConversation) LastMessage() *ChatMessage {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

// LastMessageTime returns the max message timestamp, or the conversation's
// creation time when the log is empty.
func (c *ChatConversation) LastMessageTime() time.Time {
	if len(c.Messages) == 0 {
		return c.CreatedAt
	}
	last := c.Messages[0].Timestamp
	for _, m := range c.Messages[1:] {
		if m.Timestamp.After(last) {
			last = m.Timestamp
		}
	}
	return last
}
