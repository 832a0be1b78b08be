package entity

import "time"

type CommentType string

const (
	CommentWantToGo  CommentType = "want_to_go"
	CommentBeenThere CommentType = "been_there"
)

type Author struct {
	UserID            string `json:"user_id"`
	Name              string `json:"name"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

type Comment struct {
	ID          string      `json:"id"`
	PostID      string      `json:"post_id"`
	UserID      string      `json:"user_id"`
	Content     string      `json:"content"`
	CommentType CommentType `json:"comment_type"`
	Likes       int         `json:"likes"`
	CreatedAt   time.Time   `json:"created_at"`
	Author      *Author     `json:"profiles"`
}

type CommentInput struct {
	Content     string      `json:"content" validate:"notblank,max=2000"`
	CommentType CommentType `json:"comment_type" validate:"required,oneof=want_to_go been_there"`
}
