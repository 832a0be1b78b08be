package usecase

import (
	"context"
	"errors"

	"travel-journal/pkg/apperr"
	"travel-journal/pkg/cache"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/queue"
	"travel-journal/services/post/internal/entity"
	"travel-journal/services/post/internal/repo/persistent"
)

type ToggleResult struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
}

type InteractionUseCase interface {
	ToggleLike(ctx context.Context, userID, postID string) (*ToggleResult, error)
	ToggleSave(ctx context.Context, userID, postID string) (*ToggleResult, error)
	ListSaved(ctx context.Context, userID string, page, pageSize int) ([]*entity.Post, int64, error)
	TrackView(ctx context.Context, postID, userID, sessionID string) *int
}

type interactionUseCase struct {
	postRepo        persistent.PostRepository
	interactionRepo persistent.InteractionRepository
	cache           cache.Cache
	publisher       queue.Publisher
	logger          *logger.Logger
}

func NewInteractionUseCase(
	postRepo persistent.PostRepository,
	interactionRepo persistent.InteractionRepository,
	feedCache cache.Cache,
	publisher queue.Publisher,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		postRepo:        postRepo,
		interactionRepo: interactionRepo,
		cache:           feedCache,
		publisher:       publisher,
		logger:          logger,
	}
}

func (uc *interactionUseCase) loadPost(ctx context.Context, postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperr.NewNotFoundOrForbidden("Post not found")
		}
		return nil, apperr.NewUpstream("failed to load post", err)
	}
	return post, nil
}

// ToggleLike flips the caller's like. The counter moves atomically in the
// repository so concurrent togglers never lose an update.
func (uc *interactionUseCase) ToggleLike(ctx context.Context, userID, postID string) (*ToggleResult, error) {
	if userID == "" {
		return nil, apperr.NewUnauthenticated()
	}
	post, err := uc.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := uc.interactionRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, apperr.NewUpstream("failed to check like", err)
	}

	result := &ToggleResult{Active: !liked}
	if liked {
		result.Count, err = uc.interactionRepo.RemoveLike(ctx, userID, postID)
	} else {
		result.Count, err = uc.interactionRepo.AddLike(ctx, userID, postID)
	}
	if err != nil {
		uc.logger.Error("Failed to toggle like on post %s: %v", postID, err)
		return nil, apperr.NewUpstream("failed to toggle like", err)
	}

	invalidateFeed(ctx, uc.cache, uc.logger)
	if result.Active && post.UserID != userID {
		queue.PublishAsync(uc.publisher, uc.logger, queue.Event{
			Type:        queue.EventPostLiked,
			RecipientID: post.UserID,
			ActorID:     userID,
			PostID:      postID,
			Priority:    3,
		})
	}
	return result, nil
}

func (uc *interactionUseCase) ToggleSave(ctx context.Context, userID, postID string) (*ToggleResult, error) {
	if userID == "" {
		return nil, apperr.NewUnauthenticated()
	}
	if _, err := uc.loadPost(ctx, postID); err != nil {
		return nil, err
	}

	saved, err := uc.interactionRepo.IsSaved(ctx, userID, postID)
	if err != nil {
		return nil, apperr.NewUpstream("failed to check save", err)
	}

	result := &ToggleResult{Active: !saved}
	if saved {
		result.Count, err = uc.interactionRepo.RemoveSave(ctx, userID, postID)
	} else {
		result.Count, err = uc.interactionRepo.AddSave(ctx, userID, postID)
	}
	if err != nil {
		uc.logger.Error("Failed to toggle save on post %s: %v", postID, err)
		return nil, apperr.NewUpstream("failed to toggle save", err)
	}

	invalidateFeed(ctx, uc.cache, uc.logger)
	return result, nil
}

// ListSaved counts first so a page past the end returns empty without a
// second query.
func (uc *interactionUseCase) ListSaved(ctx context.Context, userID string, page, pageSize int) ([]*entity.Post, int64, error) {
	if userID == "" {
		return nil, 0, apperr.NewUnauthenticated()
	}

	count, err := uc.interactionRepo.CountSaved(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to count saved posts of %s: %v", userID, err)
		return []*entity.Post{}, 0, nil
	}

	limit, offset := paginate(page, pageSize)
	if int64(offset) >= count {
		return []*entity.Post{}, count, nil
	}

	posts, err := uc.interactionRepo.ListSaved(ctx, userID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list saved posts of %s: %v", userID, err)
		return []*entity.Post{}, count, nil
	}
	return posts, count, nil
}

// TrackView records one view per session and returns the post's view count,
// or nil when it could not be recorded.
func (uc *interactionUseCase) TrackView(ctx context.Context, postID, userID, sessionID string) *int {
	if postID == "" || sessionID == "" {
		return nil
	}

	var viewer *string
	if userID != "" {
		viewer = &userID
	}

	views, err := uc.interactionRepo.RecordView(ctx, postID, viewer, sessionID)
	if err != nil {
		uc.logger.Error("Failed to track view of post %s: %v", postID, err)
		return nil
	}
	return &views
}
