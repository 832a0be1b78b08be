package usecase

import (
	"context"
	"io"

	"travel-journal/services/post/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)
	if args.Error(0) == nil && post.ID == "" {
		post.ID = "post-new"
	}
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID string) (*entity.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) UpdateOwned(ctx context.Context, postID, userID string, columns map[string]interface{}) (bool, error) {
	args := m.Called(ctx, postID, userID, columns)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) DeleteOwned(ctx context.Context, postID, userID string) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID string, category entity.Category, limit, offset int) ([]*entity.Post, error) {
	args := m.Called(ctx, userID, category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) RelatedCandidates(ctx context.Context, category entity.Category, regions []string, excludeID string, limit int) ([]*entity.Post, error) {
	args := m.Called(ctx, category, regions, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) IsLiked(ctx context.Context, userID, postID string) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) IsSaved(ctx context.Context, userID, postID string) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) AddLike(ctx context.Context, userID, postID string) (int, error) {
	args := m.Called(ctx, userID, postID)
	return args.Int(0), args.Error(1)
}

func (m *MockInteractionRepository) RemoveLike(ctx context.Context, userID, postID string) (int, error) {
	args := m.Called(ctx, userID, postID)
	return args.Int(0), args.Error(1)
}

func (m *MockInteractionRepository) AddSave(ctx context.Context, userID, postID string) (int, error) {
	args := m.Called(ctx, userID, postID)
	return args.Int(0), args.Error(1)
}

func (m *MockInteractionRepository) RemoveSave(ctx context.Context, userID, postID string) (int, error) {
	args := m.Called(ctx, userID, postID)
	return args.Int(0), args.Error(1)
}

func (m *MockInteractionRepository) CountSaved(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionRepository) ListSaved(ctx context.Context, userID string, limit, offset int) ([]*entity.Post, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockInteractionRepository) RecordView(ctx context.Context, postID string, userID *string, sessionID string) (int, error) {
	args := m.Called(ctx, postID, userID, sessionID)
	return args.Int(0), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) List(ctx context.Context, postID string, commentType entity.CommentType) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID, commentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Profiles(ctx context.Context, userIDs []string) (map[string]*entity.Author, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*entity.Author), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteOwned(ctx context.Context, commentID, userID string) (*entity.Comment, error) {
	args := m.Called(ctx, commentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Like(ctx context.Context, commentID string) (int, error) {
	args := m.Called(ctx, commentID)
	return args.Int(0), args.Error(1)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) UploadPostImage(ctx context.Context, userID, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, userID, filename, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) DeleteByURL(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
