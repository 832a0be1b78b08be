package persistent

import (
	"context"

	"travel-journal/pkg/models"
	"travel-journal/services/post/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Counter columns on posts that the repositories adjust in place.
const (
	ColumnLikes          = "likes"
	ColumnViews          = "views"
	ColumnSavedCount     = "saved_count"
	ColumnWantToGoCount  = "want_to_go_count"
	ColumnBeenThereCount = "been_there_count"
	ColumnCommentCount   = "comment_count"
)

type InteractionRepository interface {
	IsLiked(ctx context.Context, userID, postID string) (bool, error)
	IsSaved(ctx context.Context, userID, postID string) (bool, error)
	AddLike(ctx context.Context, userID, postID string) (int, error)
	RemoveLike(ctx context.Context, userID, postID string) (int, error)
	AddSave(ctx context.Context, userID, postID string) (int, error)
	RemoveSave(ctx context.Context, userID, postID string) (int, error)
	CountSaved(ctx context.Context, userID string) (int64, error)
	ListSaved(ctx context.Context, userID string, limit, offset int) ([]*entity.Post, error)
	RecordView(ctx context.Context, postID string, userID *string, sessionID string) (int, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// adjustCounter moves column by delta without letting it drop below zero.
func adjustCounter(tx *gorm.DB, postID, column string, delta int) error {
	return tx.Model(&models.Post{}).
		Where("post_id = ?", postID).
		UpdateColumn(column, clause.Expr{SQL: "GREATEST(" + column + " + ?, 0)", Vars: []interface{}{delta}}).
		Error
}

func readCounter(tx *gorm.DB, postID, column string) (int, error) {
	var value int
	err := tx.Model(&models.Post{}).Select(column).Where("post_id = ?", postID).Scan(&value).Error
	return value, err
}

func (r *interactionRepository) exists(ctx context.Context, model interface{}, userID, postID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
	return count > 0, err
}

func (r *interactionRepository) IsLiked(ctx context.Context, userID, postID string) (bool, error) {
	return r.exists(ctx, &models.PostLike{}, userID, postID)
}

func (r *interactionRepository) IsSaved(ctx context.Context, userID, postID string) (bool, error) {
	return r.exists(ctx, &models.SavedPost{}, userID, postID)
}

// addRelation inserts the relation row and bumps column only when the row is
// new, so a repeated add leaves the counter alone.
func (r *interactionRepository) addRelation(ctx context.Context, row interface{}, postID, column string) (int, error) {
	var value int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			if err := adjustCounter(tx, postID, column, 1); err != nil {
				return err
			}
		}
		var err error
		value, err = readCounter(tx, postID, column)
		return err
	})
	return value, err
}

func (r *interactionRepository) removeRelation(ctx context.Context, model interface{}, userID, postID, column string) (int, error) {
	var value int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			if err := adjustCounter(tx, postID, column, -1); err != nil {
				return err
			}
		}
		var err error
		value, err = readCounter(tx, postID, column)
		return err
	})
	return value, err
}

func (r *interactionRepository) AddLike(ctx context.Context, userID, postID string) (int, error) {
	return r.addRelation(ctx, &models.PostLike{PostID: postID, UserID: userID}, postID, ColumnLikes)
}

func (r *interactionRepository) RemoveLike(ctx context.Context, userID, postID string) (int, error) {
	return r.removeRelation(ctx, &models.PostLike{}, userID, postID, ColumnLikes)
}

func (r *interactionRepository) AddSave(ctx context.Context, userID, postID string) (int, error) {
	return r.addRelation(ctx, &models.SavedPost{PostID: postID, UserID: userID}, postID, ColumnSavedCount)
}

func (r *interactionRepository) RemoveSave(ctx context.Context, userID, postID string) (int, error) {
	return r.removeRelation(ctx, &models.SavedPost{}, userID, postID, ColumnSavedCount)
}

func (r *interactionRepository) CountSaved(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SavedPost{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *interactionRepository) ListSaved(ctx context.Context, userID string, limit, offset int) ([]*entity.Post, error) {
	var postModels []models.Post
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN saved_posts ON saved_posts.post_id = posts.post_id").
		Where("saved_posts.user_id = ?", userID).
		Order("saved_posts.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

// RecordView counts one view per (post, session) and returns the post's views.
func (r *interactionRepository) RecordView(ctx context.Context, postID string, userID *string, sessionID string) (int, error) {
	return r.addRelation(ctx, &models.PostView{PostID: postID, UserID: userID, SessionID: sessionID}, postID, ColumnViews)
}
