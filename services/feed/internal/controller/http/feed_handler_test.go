package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-journal/pkg/logger"
	"travel-journal/pkg/models"
	"travel-journal/services/feed/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFeedUseCase struct {
	mock.Mock
}

func (m *MockFeedUseCase) HallOfFame(ctx context.Context) []entity.RankedPost {
	return m.Called(ctx).Get(0).([]entity.RankedPost)
}

func (m *MockFeedUseCase) WeeklyBest(ctx context.Context, excludeIDs []string) []entity.RankedPost {
	return m.Called(ctx, excludeIDs).Get(0).([]entity.RankedPost)
}

func (m *MockFeedUseCase) TopCommunity(ctx context.Context) []entity.RankedPost {
	return m.Called(ctx).Get(0).([]entity.RankedPost)
}

func (m *MockFeedUseCase) Home(ctx context.Context) *entity.Home {
	return m.Called(ctx).Get(0).(*entity.Home)
}

func (m *MockFeedUseCase) ListTravelCourses(ctx context.Context, filter entity.BrowseFilter) *entity.PostPage {
	return m.Called(ctx, filter).Get(0).(*entity.PostPage)
}

func (m *MockFeedUseCase) ListCommunity(ctx context.Context, page, pageSize int, sort models.PostSort) *entity.PostPage {
	return m.Called(ctx, page, pageSize, sort).Get(0).(*entity.PostPage)
}

func (m *MockFeedUseCase) Search(ctx context.Context, query string, category models.PostCategory, page, pageSize int) *entity.PostPage {
	return m.Called(ctx, query, category, page, pageSize).Get(0).(*entity.PostPage)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func ranked(id string, score float64) entity.RankedPost {
	return entity.RankedPost{FeedPost: entity.FeedPost{ID: id}, BestScore: score}
}

func TestGetWeeklyBest_ExcludesHallOfFameByDefault(t *testing.T) {
	uc := new(MockFeedUseCase)
	handler := NewFeedHandler(uc, logger.New())
	router := setupTestRouter()
	router.GET("/feed/weekly-best", handler.GetWeeklyBest)

	uc.On("HallOfFame", mock.Anything).Return([]entity.RankedPost{ranked("h1", 9), ranked("h2", 8)})
	uc.On("WeeklyBest", mock.Anything, []string{"h1", "h2"}).Return([]entity.RankedPost{ranked("w1", 2.4)})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/feed/weekly-best", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Posts []entity.RankedPost `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Posts, 1)
	assert.Equal(t, "w1", body.Posts[0].ID)
	assert.Equal(t, 2.4, body.Posts[0].BestScore)
	uc.AssertExpectations(t)
}

func TestGetWeeklyBest_ExplicitExclude(t *testing.T) {
	uc := new(MockFeedUseCase)
	handler := NewFeedHandler(uc, logger.New())
	router := setupTestRouter()
	router.GET("/feed/weekly-best", handler.GetWeeklyBest)

	uc.On("WeeklyBest", mock.Anything, []string(nil)).Return([]entity.RankedPost{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/feed/weekly-best?exclude=", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"posts":[]}`, w.Body.String())
	uc.AssertNotCalled(t, "HallOfFame", mock.Anything)
}

func TestListTravelCourses_ParsesFilter(t *testing.T) {
	uc := new(MockFeedUseCase)
	handler := NewFeedHandler(uc, logger.New())
	router := setupTestRouter()
	router.GET("/feed/travel-courses", handler.ListTravelCourses)

	expected := entity.BrowseFilter{
		Cities:         []string{"제주시", "서귀포시"},
		Transportation: []string{"bus", "walk"},
		Sort:           models.SortLikes,
		Page:           2,
		PageSize:       20,
	}
	uc.On("ListTravelCourses", mock.Anything, expected).Return(&entity.PostPage{Posts: []entity.FeedPost{}, Count: 0})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet,
		"/feed/travel-courses?cities=%EC%A0%9C%EC%A3%BC%EC%8B%9C,%EC%84%9C%EA%B7%80%ED%8F%AC%EC%8B%9C&transportation=bus&transportation=walk&sort=likes&page=2&page_size=20", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"posts":[],"count":0}`, w.Body.String())
	uc.AssertExpectations(t)
}

func TestGetHome(t *testing.T) {
	uc := new(MockFeedUseCase)
	handler := NewFeedHandler(uc, logger.New())
	router := setupTestRouter()
	router.GET("/feed/home", handler.GetHome)

	uc.On("Home", mock.Anything).Return(&entity.Home{
		HallOfFame:   []entity.RankedPost{ranked("h1", 9)},
		TopCommunity: []entity.RankedPost{},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/feed/home", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var home entity.Home
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &home))
	require.Len(t, home.HallOfFame, 1)
	assert.Equal(t, "h1", home.HallOfFame[0].ID)
	assert.Empty(t, home.TopCommunity)
}

func TestSearch_PassesQuery(t *testing.T) {
	uc := new(MockFeedUseCase)
	handler := NewFeedHandler(uc, logger.New())
	router := setupTestRouter()
	router.GET("/search", handler.Search)

	uc.On("Search", mock.Anything, "jeju", models.CategoryCommunity, 1, 10).
		Return(&entity.PostPage{Posts: []entity.FeedPost{{ID: "p1"}}, Count: 1})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/search?q=jeju&category=Community", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var page entity.PostPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Count)
	uc.AssertExpectations(t)
}
