package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"travel-journal/pkg/apperr"
	"travel-journal/pkg/cache"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/validation"
	"travel-journal/services/post/internal/entity"
	"travel-journal/services/post/internal/repo/persistent"

	"golang.org/x/sync/errgroup"
)

// ImageStore keeps post cover images; *s3.Client satisfies it.
type ImageStore interface {
	UploadPostImage(ctx context.Context, userID, filename, contentType string, body io.Reader) (string, error)
	DeleteByURL(ctx context.Context, url string) error
}

// ImageUpload is an optional cover image sent with a create or update.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type PostUseCase interface {
	CreatePost(ctx context.Context, userID string, input entity.PostInput, image *ImageUpload) (*entity.Post, error)
	GetPost(ctx context.Context, postID, userID string) (*entity.PostDetail, error)
	UpdatePost(ctx context.Context, userID, postID string, input entity.PostInput, image *ImageUpload) (*entity.Post, error)
	DeletePost(ctx context.Context, userID, postID string) error
	AttachCourse(ctx context.Context, userID, postID, courseID string) (*entity.Post, error)
	ListByUser(ctx context.Context, userID string, category entity.Category, page, pageSize int) ([]*entity.Post, error)
	ListMyCourses(ctx context.Context, userID string, page, pageSize int) ([]*entity.Post, error)
	Related(ctx context.Context, postID string, limit int) []entity.RelatedPost
}

type postUseCase struct {
	postRepo        persistent.PostRepository
	interactionRepo persistent.InteractionRepository
	images          ImageStore
	cache           cache.Cache
	validator       *validation.Validator
	logger          *logger.Logger
	now             func() time.Time
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	interactionRepo persistent.InteractionRepository,
	images ImageStore,
	feedCache cache.Cache,
	validator *validation.Validator,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:        postRepo,
		interactionRepo: interactionRepo,
		images:          images,
		cache:           feedCache,
		validator:       validator,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *postUseCase) uploadImage(ctx context.Context, userID string, image *ImageUpload) (string, error) {
	if uc.images == nil {
		return "", apperr.NewUpstream("image storage is not configured", nil)
	}
	url, err := uc.images.UploadPostImage(ctx, userID, image.Filename, image.ContentType, image.Body)
	if err != nil {
		uc.logger.Error("Failed to upload image for user %s: %v", userID, err)
		return "", apperr.NewUpstream("failed to upload image", err)
	}
	return url, nil
}

func (uc *postUseCase) discardImage(url string) {
	if uc.images == nil || url == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := uc.images.DeleteByURL(ctx, url); err != nil {
		uc.logger.Warn("Failed to delete orphaned image %s: %v", url, err)
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, userID string, input entity.PostInput, image *ImageUpload) (*entity.Post, error) {
	if userID == "" {
		return nil, apperr.NewUnauthenticated()
	}
	if err := uc.validator.Struct(input); err != nil {
		return nil, err
	}

	if image != nil {
		url, err := uc.uploadImage(ctx, userID, image)
		if err != nil {
			return nil, err
		}
		input.ImageURL = url
	}

	post := persistent.PostFromInput(userID, input)
	if err := uc.postRepo.Create(ctx, post); err != nil {
		uc.logger.Error("Failed to create post for user %s: %v", userID, err)
		if image != nil {
			uc.discardImage(input.ImageURL)
		}
		return nil, apperr.NewUpstream("failed to create post", err)
	}

	invalidateFeed(ctx, uc.cache, uc.logger)
	return post, nil
}

func (uc *postUseCase) GetPost(ctx context.Context, postID, userID string) (*entity.PostDetail, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperr.NewNotFoundOrForbidden("Post not found")
		}
		return nil, apperr.NewUpstream("failed to load post", err)
	}

	detail := &entity.PostDetail{Post: post}
	if userID == "" {
		return detail, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		liked, err := uc.interactionRepo.IsLiked(gctx, userID, postID)
		if err != nil {
			uc.logger.Error("Failed to check like of post %s: %v", postID, err)
			return nil
		}
		detail.IsLiked = liked
		return nil
	})
	g.Go(func() error {
		saved, err := uc.interactionRepo.IsSaved(gctx, userID, postID)
		if err != nil {
			uc.logger.Error("Failed to check save of post %s: %v", postID, err)
			return nil
		}
		detail.IsSaved = saved
		return nil
	})
	_ = g.Wait()

	return detail, nil
}

func (uc *postUseCase) UpdatePost(ctx context.Context, userID, postID string, input entity.PostInput, image *ImageUpload) (*entity.Post, error) {
	if userID == "" {
		return nil, apperr.NewUnauthenticated()
	}
	if err := uc.validator.Struct(input); err != nil {
		return nil, err
	}

	current, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperr.NewNotFoundOrForbidden("Post not found or user doesn't have permission")
		}
		return nil, apperr.NewUpstream("failed to load post", err)
	}
	if current.UserID != userID {
		return nil, apperr.NewNotFoundOrForbidden("Post not found or user doesn't have permission")
	}

	if input.ImageURL == "" {
		input.ImageURL = current.ImageURL
	}
	if image != nil {
		url, err := uc.uploadImage(ctx, userID, image)
		if err != nil {
			return nil, err
		}
		input.ImageURL = url
	}

	updated, err := uc.postRepo.UpdateOwned(ctx, postID, userID, persistent.UpdateColumns(persistent.PostFromInput(userID, input)))
	if err != nil || !updated {
		if image != nil {
			uc.discardImage(input.ImageURL)
		}
		if err != nil {
			uc.logger.Error("Failed to update post %s: %v", postID, err)
			return nil, apperr.NewUpstream("failed to update post", err)
		}
		return nil, apperr.NewNotFoundOrForbidden("Post not found or user doesn't have permission")
	}
	if image != nil && current.ImageURL != "" && current.ImageURL != input.ImageURL {
		uc.discardImage(current.ImageURL)
	}

	invalidateFeed(ctx, uc.cache, uc.logger)

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, apperr.NewUpstream("failed to load post", err)
	}
	return post, nil
}

func (uc *postUseCase) DeletePost(ctx context.Context, userID, postID string) error {
	if userID == "" {
		return apperr.NewUnauthenticated()
	}

	current, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return apperr.NewNotFoundOrForbidden("Post not found or user doesn't have permission")
		}
		return apperr.NewUpstream("failed to load post", err)
	}

	deleted, err := uc.postRepo.DeleteOwned(ctx, postID, userID)
	if err != nil {
		uc.logger.Error("Failed to delete post %s: %v", postID, err)
		return apperr.NewUpstream("failed to delete post", err)
	}
	if !deleted {
		return apperr.NewNotFoundOrForbidden("Post not found or user doesn't have permission")
	}

	uc.discardImage(current.ImageURL)
	invalidateFeed(ctx, uc.cache, uc.logger)
	return nil
}

func (uc *postUseCase) AttachCourse(ctx context.Context, userID, postID, courseID string) (*entity.Post, error) {
	if userID == "" {
		return nil, apperr.NewUnauthenticated()
	}
	if err := uc.validator.Var(courseID, "required,uuid", "course_id"); err != nil {
		return nil, err
	}

	updated, err := uc.postRepo.UpdateOwned(ctx, postID, userID, map[string]interface{}{"travel_course_id": courseID})
	if err != nil {
		uc.logger.Error("Failed to attach course %s to post %s: %v", courseID, postID, err)
		return nil, apperr.NewUpstream("failed to attach course", err)
	}
	if !updated {
		return nil, apperr.NewNotFoundOrForbidden("Post not found or user doesn't have permission")
	}

	invalidateFeed(ctx, uc.cache, uc.logger)

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, apperr.NewUpstream("failed to load post", err)
	}
	return post, nil
}

func (uc *postUseCase) ListByUser(ctx context.Context, userID string, category entity.Category, page, pageSize int) ([]*entity.Post, error) {
	limit, offset := paginate(page, pageSize)
	posts, err := uc.postRepo.ListByUser(ctx, userID, category, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list posts of user %s: %v", userID, err)
		return []*entity.Post{}, nil
	}
	return posts, nil
}

func (uc *postUseCase) ListMyCourses(ctx context.Context, userID string, page, pageSize int) ([]*entity.Post, error) {
	if userID == "" {
		return nil, apperr.NewUnauthenticated()
	}
	return uc.ListByUser(ctx, userID, entity.CategoryTravelCourses, page, pageSize)
}

func (uc *postUseCase) Related(ctx context.Context, postID string, limit int) []entity.RelatedPost {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	ref, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		uc.logger.Error("Failed to load reference post %s: %v", postID, err)
		return []entity.RelatedPost{}
	}

	candidates, err := uc.postRepo.RelatedCandidates(ctx, ref.Category, ref.Regions(), ref.ID, 2*limit)
	if err != nil {
		uc.logger.Error("Failed to load related candidates for %s: %v", postID, err)
		return []entity.RelatedPost{}
	}

	return ScoreRelated(ref, candidates, limit, uc.now())
}
