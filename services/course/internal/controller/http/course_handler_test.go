package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-journal/pkg/apperr"
	"travel-journal/pkg/directions"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/places"
	"travel-journal/services/course/internal/entity"
	"travel-journal/services/course/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCourseUseCase is a mock implementation of CourseUseCase
type MockCourseUseCase struct {
	mock.Mock
}

func (m *MockCourseUseCase) CreateCourse(ctx context.Context, userID string, input entity.CourseInput) (*entity.TravelCourse, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TravelCourse), args.Error(1)
}

func (m *MockCourseUseCase) UpdateCourse(ctx context.Context, userID, courseID string, input entity.CourseInput) (*entity.TravelCourse, error) {
	args := m.Called(ctx, userID, courseID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TravelCourse), args.Error(1)
}

func (m *MockCourseUseCase) DeleteCourse(ctx context.Context, userID, courseID string) error {
	args := m.Called(ctx, userID, courseID)
	return args.Error(0)
}

func (m *MockCourseUseCase) GetCourse(ctx context.Context, courseID string) (*entity.TravelCourse, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TravelCourse), args.Error(1)
}

func (m *MockCourseUseCase) ListMyCourses(ctx context.Context, userID string, page, pageSize int) ([]*entity.TravelCourse, bool, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).([]*entity.TravelCourse), args.Bool(1), args.Error(2)
}

func (m *MockCourseUseCase) TransportationTypes(ctx context.Context, courseID string) []string {
	args := m.Called(ctx, courseID)
	return args.Get(0).([]string)
}

func (m *MockCourseUseCase) Regions(ctx context.Context, courseID string) []string {
	args := m.Called(ctx, courseID)
	return args.Get(0).([]string)
}

var _ usecase.CourseUseCase = (*MockCourseUseCase)(nil)

// MockRouteUseCase is a mock implementation of RouteUseCase
type MockRouteUseCase struct {
	mock.Mock
}

func (m *MockRouteUseCase) Route(ctx context.Context, points []directions.Point) ([]directions.LatLng, error) {
	args := m.Called(ctx, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directions.LatLng), args.Error(1)
}

func (m *MockRouteUseCase) DayRoute(ctx context.Context, courseID string, day int) ([]directions.LatLng, error) {
	args := m.Called(ctx, courseID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directions.LatLng), args.Error(1)
}

func (m *MockRouteUseCase) Directions(ctx context.Context, req directions.Request) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockRouteUseCase) SearchPlaces(ctx context.Context, keyword string) ([]places.Place, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]places.Place), args.Error(1)
}

var _ usecase.RouteUseCase = (*MockRouteUseCase)(nil)

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

const jejuTripJSON = `{
	"title": "Jeju Trip",
	"travelType": "plan",
	"startDate": "2026-11-01",
	"endDate": "2026-11-02",
	"selectedCities": {"제주": ["제주시"]},
	"days": [
		{"places": [{"name": "Airport", "x": 126.49, "y": 33.51}, {"name": "Beach", "x": "126.55", "y": "33.45", "transport": "car"}]},
		{"places": [{"name": "", "x": null, "y": null}]}
	]
}`

func TestCreateCourse_Success(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/courses", withUser("user-123", handler.CreateCourse))

	mockUseCase.On("CreateCourse", mock.Anything, "user-123", mock.MatchedBy(func(in entity.CourseInput) bool {
		return in.Title == "Jeju Trip" && len(in.Days) == 2 &&
			in.Days[0].Places[1].X == entity.NewCoordinate(126.55) &&
			!in.Days[1].Places[0].X.Valid
	})).Return(&entity.TravelCourse{ID: "course-1", Title: "Jeju Trip"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courses", bytes.NewBufferString(jejuTripJSON))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "course-1", response["courseId"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateCourse_BadJSON(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/courses", withUser("user-123", handler.CreateCourse))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courses", bytes.NewBufferString(`{"days":[{"places":[{"x":"abc"}]}]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateCourse", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCourse_Unauthenticated(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/courses", handler.CreateCourse)

	mockUseCase.On("CreateCourse", mock.Anything, "", mock.Anything).Return(nil, apperr.NewUnauthenticated())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courses", bytes.NewBufferString(jejuTripJSON))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateCourse_NotOwned(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/courses/:id", withUser("intruder", handler.UpdateCourse))

	mockUseCase.On("UpdateCourse", mock.Anything, "intruder", "course-1", mock.Anything).
		Return(nil, apperr.NewNotFoundOrForbidden("Course not found or user doesn't have permission"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/courses/course-1", bytes.NewBufferString(jejuTripJSON))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "NOT_FOUND_OR_FORBIDDEN", response["code"])
}

func TestDeleteCourse_Success(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/courses/:id", withUser("user-123", handler.DeleteCourse))

	mockUseCase.On("DeleteCourse", mock.Anything, "user-123", "course-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/courses/course-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListMyCourses(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/courses/mine", withUser("user-123", handler.ListMyCourses))

	mockUseCase.On("ListMyCourses", mock.Anything, "user-123", 2, 5).
		Return([]*entity.TravelCourse{{ID: "course-1"}}, false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courses/mine?page=2&page_size=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, false, response["has_more"])
	assert.Len(t, response["courses"], 1)
}

func TestGetTransportation(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/courses/:id/transportation", handler.GetTransportation)

	mockUseCase.On("TransportationTypes", mock.Anything, "course-1").Return([]string{"car", "walk"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courses/course-1/transportation", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"transportation":["car","walk"]}`, w.Body.String())
}
