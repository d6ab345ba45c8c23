package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommunityComment optionally references a parent comment, giving one level
// of reply nesting in the read model.
type CommunityComment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PostID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ParentCommentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_comment_id,omitempty"`
	Content         string     `gorm:"type:varchar(2000);not null" json:"content"`
	LikesCount      int        `gorm:"not null;default:0" json:"likes_count"`
	IsActive        bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Post *CommunityPost `gorm:"foreignKey:PostID" json:"post,omitempty"`
	User *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (CommunityComment) TableName() string {
	return "community_comments"
}

func (c *CommunityComment) IsReply() bool {
	return c.ParentCommentID != nil
}
