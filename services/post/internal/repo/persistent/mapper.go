package persistent

import (
	"travel-journal/pkg/models"
	"travel-journal/services/post/internal/entity"

	"github.com/lib/pq"
)

func ToPostEntity(m *models.Post) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:         m.ID,
		UserID:     m.UserID,
		Title:      m.Title,
		Content:    m.Content,
		ImageURL:   m.ImageURL,
		Category:   entity.Category(m.Category),
		Tags:       stringList(m.Tags),
		YoutubeURL: m.YoutubeURL,
		Engagement: entity.Engagement{
			Likes:          m.Likes,
			Views:          m.Views,
			SavedCount:     m.SavedCount,
			WantToGoCount:  m.WantToGoCount,
			BeenThereCount: m.BeenThereCount,
			CommentCount:   m.CommentCount,
		},
		Yoiki: entity.YoikiInfo{
			Enabled:    m.Yoiki,
			Categories: stringList(m.YoikiCategory),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if post.Category == entity.CategoryTravelCourses {
		post.Travel = &entity.TravelDetails{
			CourseID:       m.TravelCourseID,
			Regions:        stringList(m.Region),
			Transportation: stringList(m.Transportation),
		}
	} else {
		post.Community = &entity.CommunityDetails{Regions: stringList(m.Region)}
	}

	return post
}

func ToPostModel(e *entity.Post) *models.Post {
	if e == nil {
		return nil
	}

	post := &models.Post{
		ID:             e.ID,
		UserID:         e.UserID,
		Title:          e.Title,
		Content:        e.Content,
		ImageURL:       e.ImageURL,
		Category:       models.PostCategory(e.Category),
		Tags:           pq.StringArray(stringList(e.Tags)),
		Region:         pq.StringArray(e.Regions()),
		Transportation: pq.StringArray(e.Transportation()),
		YoutubeURL:     e.YoutubeURL,
		Likes:          e.Engagement.Likes,
		Views:          e.Engagement.Views,
		SavedCount:     e.Engagement.SavedCount,
		WantToGoCount:  e.Engagement.WantToGoCount,
		BeenThereCount: e.Engagement.BeenThereCount,
		CommentCount:   e.Engagement.CommentCount,
		Yoiki:          e.Yoiki.Enabled,
		YoikiCategory:  pq.StringArray(stringList(e.Yoiki.Categories)),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if e.Travel != nil {
		post.TravelCourseID = e.Travel.CourseID
	}

	return post
}

// PostFromInput builds the variant selected by input.Category.
func PostFromInput(userID string, input entity.PostInput) *entity.Post {
	post := &entity.Post{
		UserID:     userID,
		Title:      input.Title,
		Content:    input.Content,
		ImageURL:   input.ImageURL,
		Category:   input.Category,
		Tags:       stringList(input.Tags),
		YoutubeURL: input.YoutubeURL,
		Yoiki: entity.YoikiInfo{
			Enabled:    input.Yoiki,
			Categories: stringList(input.YoikiCategory),
		},
	}

	if input.Category == entity.CategoryTravelCourses {
		post.Travel = &entity.TravelDetails{
			CourseID:       input.TravelCourseID,
			Regions:        stringList(input.Region),
			Transportation: stringList(input.Transportation),
		}
	} else {
		post.Community = &entity.CommunityDetails{Regions: stringList(input.Region)}
	}

	return post
}

// UpdateColumns lists the columns an owner may change; counters are absent.
func UpdateColumns(post *entity.Post) map[string]interface{} {
	m := ToPostModel(post)
	return map[string]interface{}{
		"title":            m.Title,
		"content":          m.Content,
		"image_url":        m.ImageURL,
		"category":         m.Category,
		"tags":             m.Tags,
		"region":           m.Region,
		"transportation":   m.Transportation,
		"travel_course_id": m.TravelCourseID,
		"youtube_url":      m.YoutubeURL,
		"yoiki":            m.Yoiki,
		"yoiki_category":   m.YoikiCategory,
	}
}

func ToCommentEntity(m *models.Comment) *entity.Comment {
	if m == nil {
		return nil
	}
	return &entity.Comment{
		ID:          m.ID,
		PostID:      m.PostID,
		UserID:      m.UserID,
		Content:     m.Content,
		CommentType: entity.CommentType(m.CommentType),
		Likes:       m.Likes,
		CreatedAt:   m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *models.Comment {
	if e == nil {
		return nil
	}
	return &models.Comment{
		ID:          e.ID,
		PostID:      e.PostID,
		UserID:      e.UserID,
		Content:     e.Content,
		CommentType: models.CommentType(e.CommentType),
		Likes:       e.Likes,
		CreatedAt:   e.CreatedAt,
	}
}

func ToAuthorEntity(m *models.UserProfile) *entity.Author {
	if m == nil {
		return nil
	}
	return &entity.Author{
		UserID:            m.UserID,
		Name:              m.Name,
		ProfilePictureURL: m.ProfilePictureURL,
	}
}

func stringList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
