package persistent

import (
	"context"
	"errors"

	"travel-journal/pkg/models"
	"travel-journal/services/yoiki/internal/entity"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type YoikiRepository interface {
	Feed(ctx context.Context, filter entity.FeedFilter) ([]entity.YoikiPost, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type yoikiRepository struct {
	db *gorm.DB
}

func NewYoikiRepository(db *gorm.DB) YoikiRepository {
	return &yoikiRepository{db: db}
}

func (r *yoikiRepository) Feed(ctx context.Context, filter entity.FeedFilter) ([]entity.YoikiPost, error) {
	query := r.db.WithContext(ctx).Where("yoiki = ?", true)
	if len(filter.Cities) > 0 {
		query = query.Where("region && ?", pq.StringArray(filter.Cities))
	}
	if len(filter.Categories) > 0 {
		query = query.Where("yoiki_category && ?", pq.StringArray(filter.Categories))
	}

	var rows []models.Post
	if err := query.Order(filter.Sort.OrderClause()).Limit(filter.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	posts := make([]entity.YoikiPost, len(rows))
	for i := range rows {
		posts[i] = ToYoikiPost(&rows[i])
	}
	return posts, nil
}

// IsAdmin reports whether userID has an admin profile. A missing profile is
// not an admin.
func (r *yoikiRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).Select("is_admin").Where("user_id = ?", userID).Take(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return profile.IsAdmin, nil
}
