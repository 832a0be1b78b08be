package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-journal/pkg/apperr"
	"travel-journal/pkg/logger"
	"travel-journal/services/post/internal/entity"
	"travel-journal/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, userID string, input entity.PostInput, image *usecase.ImageUpload) (*entity.Post, error) {
	args := m.Called(ctx, userID, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, postID, userID string) (*entity.PostDetail, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostDetail), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(ctx context.Context, userID, postID string, input entity.PostInput, image *usecase.ImageUpload) (*entity.Post, error) {
	args := m.Called(ctx, userID, postID, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, userID, postID string) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostUseCase) AttachCourse(ctx context.Context, userID, postID, courseID string) (*entity.Post, error) {
	args := m.Called(ctx, userID, postID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListByUser(ctx context.Context, userID string, category entity.Category, page, pageSize int) ([]*entity.Post, error) {
	args := m.Called(ctx, userID, category, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListMyCourses(ctx context.Context, userID string, page, pageSize int) ([]*entity.Post, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) Related(ctx context.Context, postID string, limit int) []entity.RelatedPost {
	args := m.Called(ctx, postID, limit)
	return args.Get(0).([]entity.RelatedPost)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

// MockInteractionUseCase is a mock implementation of InteractionUseCase
type MockInteractionUseCase struct {
	mock.Mock
}

func (m *MockInteractionUseCase) ToggleLike(ctx context.Context, userID, postID string) (*usecase.ToggleResult, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ToggleResult), args.Error(1)
}

func (m *MockInteractionUseCase) ToggleSave(ctx context.Context, userID, postID string) (*usecase.ToggleResult, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ToggleResult), args.Error(1)
}

func (m *MockInteractionUseCase) ListSaved(ctx context.Context, userID string, page, pageSize int) ([]*entity.Post, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockInteractionUseCase) TrackView(ctx context.Context, postID, userID, sessionID string) *int {
	args := m.Called(ctx, postID, userID, sessionID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*int)
}

var _ usecase.InteractionUseCase = (*MockInteractionUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withUser(userID string, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		h(c)
	}
}

func TestCreatePost_JSON(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", withUser("user-123", handler.CreatePost))

	mockUseCase.On("CreatePost", mock.Anything, "user-123", mock.MatchedBy(func(in entity.PostInput) bool {
		return in.Title == "Busan" && in.Category == entity.CategoryCommunity && len(in.Tags) == 2
	}), (*usecase.ImageUpload)(nil)).Return(&entity.Post{ID: "post-1", Title: "Busan"}, nil)

	body := `{"title":"Busan","category":"Community","tags":["sea","food"]}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_MultipartWithImage(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", withUser("user-123", handler.CreatePost))

	mockUseCase.On("CreatePost", mock.Anything, "user-123", mock.MatchedBy(func(in entity.PostInput) bool {
		return in.Title == "Jeju" && in.Category == entity.CategoryTravelCourses && len(in.Region) == 1
	}), mock.MatchedBy(func(img *usecase.ImageUpload) bool {
		if img == nil || img.Filename != "cover.jpg" {
			return false
		}
		data, _ := io.ReadAll(img.Body)
		return string(data) == "jpeg-bytes"
	})).Return(&entity.Post{ID: "post-2"}, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("title", "Jeju"))
	require.NoError(t, writer.WriteField("category", "Travel Courses"))
	require.NoError(t, writer.WriteField("region", "제주"))
	part, err := writer.CreateFormFile("image", "cover.jpg")
	require.NoError(t, err)
	_, _ = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	mockUseCase.On("GetPost", mock.Anything, "missing", "").Return(nil, apperr.NewNotFoundOrForbidden("Post not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post not found", response["error"])
}

func TestDeletePost_NotOwned(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", withUser("intruder", handler.DeletePost))

	mockUseCase.On("DeletePost", mock.Anything, "intruder", "post-1").
		Return(apperr.NewNotFoundOrForbidden("Post not found or user doesn't have permission"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRelated(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id/related", handler.GetRelated)

	mockUseCase.On("Related", mock.Anything, "post-1", 2).
		Return([]entity.RelatedPost{{Post: &entity.Post{ID: "post-9"}, Relevance: 12.5}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-1/related?limit=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Posts []struct {
			ID        string  `json:"post_id"`
			Relevance float64 `json:"relevance"`
		} `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Posts, 1)
	assert.Equal(t, "post-9", response.Posts[0].ID)
	assert.Equal(t, 12.5, response.Posts[0].Relevance)
}

func TestLikePost_Toggle(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", withUser("user-123", handler.LikePost))

	mockUseCase.On("ToggleLike", mock.Anything, "user-123", "post-1").Return(&usecase.ToggleResult{Active: true, Count: 6}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":true,"likes":6}`, w.Body.String())
}

func TestLikePost_Unauthenticated(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", handler.LikePost)

	mockUseCase.On("ToggleLike", mock.Anything, "", "post-1").Return(nil, apperr.NewUnauthenticated())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTrackView_UsesSessionHeader(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/view", handler.TrackView)

	views := 7
	mockUseCase.On("TrackView", mock.Anything, "post-1", "", "session-abc").Return(&views)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/view", nil)
	req.Header.Set("X-Session-ID", "session-abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"views":7,"session_id":"session-abc"}`, w.Body.String())
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestTrackView_IssuesSession(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/view", handler.TrackView)

	mockUseCase.On("TrackView", mock.Anything, "post-1", "", mock.AnythingOfType("string")).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/view", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "session_id=")
}

func TestGetSavedPosts(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/me/saved", withUser("user-123", handler.GetSavedPosts))

	mockUseCase.On("ListSaved", mock.Anything, "user-123", 5, 10).Return([]*entity.Post{}, int64(12), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me/saved?page=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"posts":[],"count":12}`, w.Body.String())
}
