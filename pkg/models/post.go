package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PostCategory string

const (
	CategoryTravelCourses PostCategory = "Travel Courses"
	CategoryCommunity     PostCategory = "Community"
)

type Post struct {
	ID             string         `gorm:"column:post_id;type:uuid;primary_key" json:"post_id"`
	UserID         string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string         `gorm:"not null" json:"title"`
	Content        string         `gorm:"type:text" json:"content"`
	ImageURL       string         `json:"image_url"`
	Category       PostCategory   `gorm:"type:varchar(32);index" json:"category"`
	Tags           pq.StringArray `gorm:"type:text[]" json:"tags"`
	Region         pq.StringArray `gorm:"type:text[]" json:"region"`
	Transportation pq.StringArray `gorm:"type:text[]" json:"transportation"`
	TravelCourseID *string        `gorm:"type:uuid;index" json:"travel_course_id"`
	Likes          int            `gorm:"default:0" json:"likes"`
	Views          int            `gorm:"default:0" json:"views"`
	SavedCount     int            `gorm:"default:0" json:"saved_count"`
	WantToGoCount  int            `gorm:"default:0" json:"want_to_go_count"`
	BeenThereCount int            `gorm:"default:0" json:"been_there_count"`
	CommentCount   int            `gorm:"default:0" json:"comment_count"`
	YoutubeURL     *string        `json:"youtube_url"`
	Yoiki          bool           `gorm:"default:false;index" json:"yoiki"`
	YoikiCategory  pq.StringArray `gorm:"type:text[]" json:"yoiki_category"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
