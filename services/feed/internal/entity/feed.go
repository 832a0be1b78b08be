package entity

import (
	"time"

	"travel-journal/pkg/models"
)

// FeedPost is the list shape of a post.
type FeedPost struct {
	ID             string    `json:"post_id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	ImageURL       string    `json:"image_url"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	Region         []string  `json:"region"`
	Transportation []string  `json:"transportation"`
	TravelCourseID *string   `json:"travel_course_id"`
	Likes          int       `json:"likes"`
	Views          int       `json:"views"`
	SavedCount     int       `json:"saved_count"`
	WantToGoCount  int       `json:"want_to_go_count"`
	BeenThereCount int       `json:"been_there_count"`
	CommentCount   int       `json:"comment_count"`
	CreatedAt      time.Time `json:"created_at"`
}

func (p FeedPost) RankID() string { return p.ID }

func (p FeedPost) RankCounters() (int, int) { return p.Likes, p.SavedCount }

func (p FeedPost) RankCreatedAt() time.Time { return p.CreatedAt }

type RankedPost struct {
	FeedPost
	BestScore float64 `json:"best_score"`
}

type Home struct {
	HallOfFame   []RankedPost `json:"hall_of_fame"`
	TopCommunity []RankedPost `json:"top_community"`
}

type PostPage struct {
	Posts []FeedPost `json:"posts"`
	Count int64      `json:"count"`
}

type BrowseFilter struct {
	Cities         []string
	Transportation []string
	Sort           models.PostSort
	Page           int
	PageSize       int
}
