package persistent

import (
	"context"
	"errors"

	"travel-journal/pkg/models"
	"travel-journal/services/post/internal/entity"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, postID string) (*entity.Post, error)
	UpdateOwned(ctx context.Context, postID, userID string, columns map[string]interface{}) (bool, error)
	DeleteOwned(ctx context.Context, postID, userID string) (bool, error)
	ListByUser(ctx context.Context, userID string, category entity.Category, limit, offset int) ([]*entity.Post, error)
	RelatedCandidates(ctx context.Context, category entity.Category, regions []string, excludeID string, limit int) ([]*entity.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*entity.Post, error) {
	var postModel models.Post
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) UpdateOwned(ctx context.Context, postID, userID string, columns map[string]interface{}) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Updates(columns)
	return result.RowsAffected > 0, result.Error
}

// DeleteOwned removes the post and every row that references it in one
// transaction. It reports false when the caller does not own the post.
func (r *postRepository) DeleteOwned(ctx context.Context, postID, userID string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}

		for _, dependent := range []interface{}{&models.PostLike{}, &models.SavedPost{}, &models.Comment{}, &models.PostView{}} {
			if err := tx.Where("post_id = ?", postID).Delete(dependent).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (r *postRepository) ListByUser(ctx context.Context, userID string, category entity.Category, limit, offset int) ([]*entity.Post, error) {
	var postModels []models.Post
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", string(category))
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) RelatedCandidates(ctx context.Context, category entity.Category, regions []string, excludeID string, limit int) ([]*entity.Post, error) {
	var postModels []models.Post
	query := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Where("post_id <> ?", excludeID)
	if len(regions) > 0 {
		query = query.Where("region && ?", pq.StringArray(regions))
	}
	if err := query.Limit(limit).Find(&postModels).Error; err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

func toPostEntities(postModels []models.Post) []*entity.Post {
	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts
}
