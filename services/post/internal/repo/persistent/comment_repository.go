package persistent

import (
	"context"
	"errors"

	"travel-journal/pkg/models"
	"travel-journal/services/post/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	List(ctx context.Context, postID string, commentType entity.CommentType) ([]*entity.Comment, error)
	Profiles(ctx context.Context, userIDs []string) (map[string]*entity.Author, error)
	Create(ctx context.Context, comment *entity.Comment) error
	DeleteOwned(ctx context.Context, commentID, userID string) (*entity.Comment, error)
	Like(ctx context.Context, commentID string) (int, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func typeCounter(commentType entity.CommentType) string {
	if commentType == entity.CommentBeenThere {
		return ColumnBeenThereCount
	}
	return ColumnWantToGoCount
}

func (r *commentRepository) List(ctx context.Context, postID string, commentType entity.CommentType) ([]*entity.Comment, error) {
	var commentModels []models.Comment
	query := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at DESC")
	if commentType != "" {
		query = query.Where("comment_type = ?", string(commentType))
	}
	if err := query.Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) Profiles(ctx context.Context, userIDs []string) (map[string]*entity.Author, error) {
	profiles := make(map[string]*entity.Author, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}

	var profileModels []models.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profileModels).Error; err != nil {
		return nil, err
	}
	for i := range profileModels {
		profiles[profileModels[i].UserID] = ToAuthorEntity(&profileModels[i])
	}
	return profiles, nil
}

// Create stores the comment and bumps comment_count plus the counter of its type.
func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(commentModel).Error; err != nil {
			return err
		}
		if err := adjustCounter(tx, comment.PostID, ColumnCommentCount, 1); err != nil {
			return err
		}
		return adjustCounter(tx, comment.PostID, typeCounter(comment.CommentType), 1)
	})
	if err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

// DeleteOwned removes the caller's comment and reverses its counters. A
// missing or foreign comment yields ErrNotFound.
func (r *commentRepository) DeleteOwned(ctx context.Context, commentID, userID string) (*entity.Comment, error) {
	var commentModel models.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", commentID, userID).First(&commentModel).Error; err != nil {
			return err
		}
		if err := tx.Delete(&commentModel).Error; err != nil {
			return err
		}
		if err := adjustCounter(tx, commentModel.PostID, ColumnCommentCount, -1); err != nil {
			return err
		}
		return adjustCounter(tx, commentModel.PostID, typeCounter(entity.CommentType(commentModel.CommentType)), -1)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) Like(ctx context.Context, commentID string) (int, error) {
	var likes int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Comment{}).Where("id = ?", commentID).
			UpdateColumn("likes", clause.Expr{SQL: "likes + ?", Vars: []interface{}{1}})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Model(&models.Comment{}).Select("likes").Where("id = ?", commentID).Scan(&likes).Error
	})
	return likes, err
}
