package usecase

import (
	"context"
	"errors"

	"travel-journal/pkg/apperr"
	"travel-journal/pkg/cache"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/queue"
	"travel-journal/pkg/validation"
	"travel-journal/services/post/internal/entity"
	"travel-journal/services/post/internal/repo/persistent"
)

type CommentUseCase interface {
	ListComments(ctx context.Context, postID string, commentType entity.CommentType) []*entity.Comment
	AddComment(ctx context.Context, userID, postID string, input entity.CommentInput) (*entity.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID string) error
	LikeComment(ctx context.Context, userID, commentID string) (int, error)
}

type commentUseCase struct {
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	cache       cache.Cache
	publisher   queue.Publisher
	validator   *validation.Validator
	logger      *logger.Logger
}

func NewCommentUseCase(
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	feedCache cache.Cache,
	publisher queue.Publisher,
	validator *validation.Validator,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		cache:       feedCache,
		publisher:   publisher,
		validator:   validator,
		logger:      logger,
	}
}

// ListComments returns newest first with author profiles attached. Failures
// degrade to an empty list.
func (uc *commentUseCase) ListComments(ctx context.Context, postID string, commentType entity.CommentType) []*entity.Comment {
	comments, err := uc.commentRepo.List(ctx, postID, commentType)
	if err != nil {
		uc.logger.Error("Failed to list comments of post %s: %v", postID, err)
		return []*entity.Comment{}
	}
	if len(comments) == 0 {
		return comments
	}

	seen := make(map[string]struct{}, len(comments))
	userIDs := make([]string, 0, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserID]; !ok {
			seen[c.UserID] = struct{}{}
			userIDs = append(userIDs, c.UserID)
		}
	}

	profiles, err := uc.commentRepo.Profiles(ctx, userIDs)
	if err != nil {
		uc.logger.Error("Failed to load comment authors of post %s: %v", postID, err)
		return comments
	}
	for _, c := range comments {
		c.Author = profiles[c.UserID]
	}
	return comments
}

func (uc *commentUseCase) AddComment(ctx context.Context, userID, postID string, input entity.CommentInput) (*entity.Comment, error) {
	if userID == "" {
		return nil, apperr.NewUnauthenticated()
	}
	if err := uc.validator.Struct(input); err != nil {
		return nil, err
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperr.NewNotFoundOrForbidden("Post not found")
		}
		return nil, apperr.NewUpstream("failed to load post", err)
	}

	comment := &entity.Comment{
		PostID:      postID,
		UserID:      userID,
		Content:     input.Content,
		CommentType: input.CommentType,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Error("Failed to add comment to post %s: %v", postID, err)
		return nil, apperr.NewUpstream("failed to add comment", err)
	}

	invalidateFeed(ctx, uc.cache, uc.logger)
	if post.UserID != userID {
		queue.PublishAsync(uc.publisher, uc.logger, queue.Event{
			Type:        queue.EventCommentAdded,
			RecipientID: post.UserID,
			ActorID:     userID,
			PostID:      postID,
			Priority:    5,
		})
	}
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, userID, commentID string) error {
	if userID == "" {
		return apperr.NewUnauthenticated()
	}

	if _, err := uc.commentRepo.DeleteOwned(ctx, commentID, userID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return apperr.NewNotFoundOrForbidden("Comment not found or user doesn't have permission")
		}
		uc.logger.Error("Failed to delete comment %s: %v", commentID, err)
		return apperr.NewUpstream("failed to delete comment", err)
	}

	invalidateFeed(ctx, uc.cache, uc.logger)
	return nil
}

func (uc *commentUseCase) LikeComment(ctx context.Context, userID, commentID string) (int, error) {
	if userID == "" {
		return 0, apperr.NewUnauthenticated()
	}

	likes, err := uc.commentRepo.Like(ctx, commentID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return 0, apperr.NewNotFoundOrForbidden("Comment not found")
		}
		uc.logger.Error("Failed to like comment %s: %v", commentID, err)
		return 0, apperr.NewUpstream("failed to like comment", err)
	}
	return likes, nil
}
