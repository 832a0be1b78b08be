package persistent

import (
	"travel-journal/pkg/models"
	"travel-journal/services/yoiki/internal/entity"
)

func ToYoikiPost(m *models.Post) entity.YoikiPost {
	return entity.YoikiPost{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		Content:       m.Content,
		ImageURL:      m.ImageURL,
		YoutubeURL:    m.YoutubeURL,
		Category:      string(m.Category),
		Tags:          stringList(m.Tags),
		Region:        stringList(m.Region),
		YoikiCategory: stringList(m.YoikiCategory),
		Likes:         m.Likes,
		Views:         m.Views,
		SavedCount:    m.SavedCount,
		CommentCount:  m.CommentCount,
		CreatedAt:     m.CreatedAt,
	}
}

func ToAnnouncementEntity(m *models.Announcement) entity.Announcement {
	return entity.Announcement{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Pinned:    m.Pinned,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToScheduleEntity(m *models.ScheduleEvent) entity.ScheduleEvent {
	return entity.ScheduleEvent{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
	}
}

func stringList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
