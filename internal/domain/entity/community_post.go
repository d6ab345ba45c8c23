package entity

import (
	"time"

	"github.com/google/uuid"
)

var PostCategories = []string{
	"Health",
	"Parenting",
	"Education",
	"Nutrition",
	"Development",
	"Safety",
	"Activities",
	"General",
	"QnA",
	"Support",
}

// CommunityPost carries running likes/comments counters maintained by the
// mutation handlers, not recomputed from children on read.
type CommunityPost struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string     `gorm:"type:varchar(300);not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Category      string     `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Tags          StringList `gorm:"type:text" json:"tags"`
	ImageURLs     StringList `gorm:"type:text" json:"image_urls"`
	LikesCount    int        `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int        `gorm:"not null;default:0" json:"comments_count"`
	IsActive      bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User     *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comments []CommunityComment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (CommunityPost) TableName() string {
	return "community_posts"
}
