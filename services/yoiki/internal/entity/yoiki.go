package entity

import (
	"time"

	"travel-journal/pkg/models"
)

// YoikiPost is a curated post as listed on the yoiki page.
type YoikiPost struct {
	ID            string    `json:"post_id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	ImageURL      string    `json:"image_url"`
	YoutubeURL    *string   `json:"youtube_url"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Region        []string  `json:"region"`
	YoikiCategory []string  `json:"yoiki_category"`
	Likes         int       `json:"likes"`
	Views         int       `json:"views"`
	SavedCount    int       `json:"saved_count"`
	CommentCount  int       `json:"comment_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type FeedFilter struct {
	Cities     []string
	Categories []string
	Sort       models.PostSort
	Limit      int
}

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AnnouncementInput struct {
	Title   string `json:"title" validate:"notblank,max=200"`
	Content string `json:"content" validate:"notblank"`
	Pinned  bool   `json:"pinned"`
}

type AnnouncementPage struct {
	Announcements []Announcement `json:"announcements"`
	Count         int64          `json:"count"`
}

type ScheduleEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

type ScheduleInput struct {
	Title       string    `json:"title" validate:"notblank,max=200"`
	Description string    `json:"description"`
	Location    string    `json:"location" validate:"max=200"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtefield=StartTime"`
}
