package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostLike struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostLike) TableName() string {
	return "post_likes"
}

func (l *PostLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type SavedPost struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_posts_post_user" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_posts_post_user;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Post Post `gorm:"foreignKey:PostID;references:ID" json:"-"`
}

func (SavedPost) TableName() string {
	return "saved_posts"
}

func (s *SavedPost) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type PostView struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_views_post_session" json:"post_id"`
	UserID    *string   `gorm:"type:uuid" json:"user_id"`
	SessionID string    `gorm:"not null;uniqueIndex:idx_post_views_post_session" json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostView) TableName() string {
	return "post_views"
}

func (v *PostView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

type CommentType string

const (
	CommentWantToGo  CommentType = "want_to_go"
	CommentBeenThere CommentType = "been_there"
)

type Comment struct {
	ID          string      `gorm:"type:uuid;primary_key" json:"id"`
	PostID      string      `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID      string      `gorm:"type:uuid;not null" json:"user_id"`
	Content     string      `gorm:"type:text;not null" json:"content"`
	CommentType CommentType `gorm:"type:varchar(16);not null" json:"comment_type"`
	Likes       int         `gorm:"default:0" json:"likes"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
