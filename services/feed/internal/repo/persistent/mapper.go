package persistent

import (
	"travel-journal/pkg/models"
	"travel-journal/services/feed/internal/entity"
)

func ToFeedPost(m *models.Post) entity.FeedPost {
	return entity.FeedPost{
		ID:             m.ID,
		UserID:         m.UserID,
		Title:          m.Title,
		Content:        m.Content,
		ImageURL:       m.ImageURL,
		Category:       string(m.Category),
		Tags:           stringList(m.Tags),
		Region:         stringList(m.Region),
		Transportation: stringList(m.Transportation),
		TravelCourseID: m.TravelCourseID,
		Likes:          m.Likes,
		Views:          m.Views,
		SavedCount:     m.SavedCount,
		WantToGoCount:  m.WantToGoCount,
		BeenThereCount: m.BeenThereCount,
		CommentCount:   m.CommentCount,
		CreatedAt:      m.CreatedAt,
	}
}

func toFeedPosts(rows []models.Post) []entity.FeedPost {
	posts := make([]entity.FeedPost, len(rows))
	for i := range rows {
		posts[i] = ToFeedPost(&rows[i])
	}
	return posts
}

func stringList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
