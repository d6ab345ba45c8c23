package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommunityLike targets exactly one of a post or a comment; mutation handlers
// reject a like with both or neither target set. A (user, target) pair exists
// at most once.
type CommunityLike struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	PostID    *uuid.UUID `gorm:"type:uuid;index" json:"post_id,omitempty"`
	CommentID *uuid.UUID `gorm:"type:uuid;index" json:"comment_id,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (CommunityLike) TableName() string {
	return "community_likes"
}

func (l *CommunityLike) IsPostLike() bool {
	return l.PostID != nil && l.CommentID == nil
}

func (l *CommunityLike) IsCommentLike() bool {
	return l.CommentID != nil && l.PostID == nil
}
