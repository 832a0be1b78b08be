package persistent

import (
	"context"
	"strings"
	"time"

	"travel-journal/pkg/models"
	"travel-journal/services/feed/internal/entity"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type BrowseQuery struct {
	Category       models.PostCategory
	Cities         []string
	Transportation []string
	Sort           models.PostSort
	Limit          int
	Offset         int
}

type FeedRepository interface {
	TopByLikes(ctx context.Context, category models.PostCategory, limit int) ([]entity.FeedPost, error)
	RecentAnyCategory(ctx context.Context, since time.Time, excludeIDs []string, limit int) ([]entity.FeedPost, error)
	RecentByCategory(ctx context.Context, category models.PostCategory, since time.Time) ([]entity.FeedPost, error)
	Browse(ctx context.Context, q BrowseQuery) ([]entity.FeedPost, int64, error)
	Search(ctx context.Context, text string, category models.PostCategory, limit, offset int) ([]entity.FeedPost, int64, error)
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) TopByLikes(ctx context.Context, category models.PostCategory, limit int) ([]entity.FeedPost, error) {
	var rows []models.Post
	err := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("likes DESC, created_at DESC, post_id").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toFeedPosts(rows), nil
}

// RecentAnyCategory returns categorized posts created at or after since,
// newest first. An empty excludeIDs adds no NOT IN clause.
func (r *feedRepository) RecentAnyCategory(ctx context.Context, since time.Time, excludeIDs []string, limit int) ([]entity.FeedPost, error) {
	var rows []models.Post
	query := r.db.WithContext(ctx).
		Where("category IS NOT NULL").
		Where("created_at >= ?", since)
	if len(excludeIDs) > 0 {
		query = query.Where("post_id NOT IN ?", excludeIDs)
	}
	if err := query.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toFeedPosts(rows), nil
}

func (r *feedRepository) RecentByCategory(ctx context.Context, category models.PostCategory, since time.Time) ([]entity.FeedPost, error) {
	var rows []models.Post
	err := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toFeedPosts(rows), nil
}

func (r *feedRepository) Browse(ctx context.Context, q BrowseQuery) ([]entity.FeedPost, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("category = ?", string(q.Category))
		if len(q.Cities) > 0 {
			db = db.Where("region && ?", pq.StringArray(q.Cities))
		}
		if len(q.Transportation) > 0 {
			db = db.Where("transportation && ?", pq.StringArray(q.Transportation))
		}
		return db
	}
	return r.page(ctx, filter, q.Sort.OrderClause(), q.Limit, q.Offset)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *feedRepository) Search(ctx context.Context, text string, category models.PostCategory, limit, offset int) ([]entity.FeedPost, int64, error) {
	pattern := "%" + likeEscaper.Replace(text) + "%"
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("(title ILIKE ? OR content ILIKE ?)", pattern, pattern)
		if category != "" {
			db = db.Where("category = ?", string(category))
		}
		return db
	}
	return r.page(ctx, filter, models.SortLatest.OrderClause(), limit, offset)
}

func (r *feedRepository) page(ctx context.Context, filter func(*gorm.DB) *gorm.DB, order string, limit, offset int) ([]entity.FeedPost, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Scopes(filter).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if count == 0 || int64(offset) >= count {
		return []entity.FeedPost{}, count, nil
	}

	var rows []models.Post
	err := r.db.WithContext(ctx).Scopes(filter).
		Order(order).
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return toFeedPosts(rows), count, nil
}
