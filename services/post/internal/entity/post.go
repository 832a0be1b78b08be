package entity

import "time"

type Category string

const (
	CategoryTravelCourses Category = "Travel Courses"
	CategoryCommunity     Category = "Community"
)

// Engagement is the set of counters every post carries. They only change
// through atomic increments in the repository.
type Engagement struct {
	Likes          int `json:"likes"`
	Views          int `json:"views"`
	SavedCount     int `json:"saved_count"`
	WantToGoCount  int `json:"want_to_go_count"`
	BeenThereCount int `json:"been_there_count"`
	CommentCount   int `json:"comment_count"`
}

// TravelDetails is set only on Travel Courses posts.
type TravelDetails struct {
	CourseID       *string  `json:"travel_course_id"`
	Regions        []string `json:"region"`
	Transportation []string `json:"transportation"`
}

// CommunityDetails is set only on Community posts.
type CommunityDetails struct {
	Regions []string `json:"region"`
}

type YoikiInfo struct {
	Enabled    bool     `json:"yoiki"`
	Categories []string `json:"yoiki_category"`
}

// Post is a tagged variant: exactly one of Travel and Community is non-nil,
// selected by Category.
type Post struct {
	ID         string            `json:"post_id"`
	UserID     string            `json:"user_id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	ImageURL   string            `json:"image_url"`
	Category   Category          `json:"category"`
	Tags       []string          `json:"tags"`
	YoutubeURL *string           `json:"youtube_url"`
	Engagement Engagement        `json:"engagement"`
	Travel     *TravelDetails    `json:"travel,omitempty"`
	Community  *CommunityDetails `json:"community,omitempty"`
	Yoiki      YoikiInfo         `json:"yoiki"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// Regions returns the region list of whichever variant is set, never nil.
func (p *Post) Regions() []string {
	switch {
	case p.Travel != nil && p.Travel.Regions != nil:
		return p.Travel.Regions
	case p.Community != nil && p.Community.Regions != nil:
		return p.Community.Regions
	}
	return []string{}
}

func (p *Post) Transportation() []string {
	if p.Travel != nil && p.Travel.Transportation != nil {
		return p.Travel.Transportation
	}
	return []string{}
}

type PostDetail struct {
	Post    *Post `json:"post"`
	IsLiked bool  `json:"is_liked"`
	IsSaved bool  `json:"is_saved"`
}

// PostInput is the editable part of a post. It binds from JSON or a
// multipart form, the latter carrying the cover image.
type PostInput struct {
	Title          string   `json:"title" form:"title" validate:"notblank,max=200"`
	Content        string   `json:"content" form:"content"`
	Category       Category `json:"category" form:"category" validate:"required,oneof='Travel Courses' Community"`
	Tags           []string `json:"tags" form:"tags" validate:"max=3,dive,notblank"`
	Region         []string `json:"region" form:"region"`
	Transportation []string `json:"transportation" form:"transportation" validate:"dive,transport"`
	TravelCourseID *string  `json:"travel_course_id" form:"travel_course_id" validate:"omitempty,uuid"`
	YoutubeURL     *string  `json:"youtube_url" form:"youtube_url" validate:"omitempty,url"`
	Yoiki          bool     `json:"yoiki" form:"yoiki"`
	YoikiCategory  []string `json:"yoiki_category" form:"yoiki_category"`
	ImageURL       string   `json:"image_url" form:"image_url" validate:"omitempty,url"`
}

type RelatedPost struct {
	*Post
	Relevance float64 `json:"relevance"`
}
