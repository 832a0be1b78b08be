package usecase

import (
	"context"
	"encoding/json"

	"travel-journal/pkg/directions"
	"travel-journal/pkg/places"
	"travel-journal/services/course/internal/entity"
	"travel-journal/services/course/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockCourseRepository is a mock implementation of CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *entity.TravelCourse) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, courseID string) (*entity.TravelCourse, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TravelCourse), args.Error(1)
}

func (m *MockCourseRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.TravelCourse, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TravelCourse), args.Error(1)
}

func (m *MockCourseRepository) CountOwned(ctx context.Context, courseID, userID string) (int64, error) {
	args := m.Called(ctx, courseID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCourseRepository) UpdateScalars(ctx context.Context, course *entity.TravelCourse) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) DeleteCourse(ctx context.Context, courseID string) error {
	args := m.Called(ctx, courseID)
	return args.Error(0)
}

func (m *MockCourseRepository) DeleteOwned(ctx context.Context, courseID, userID string) error {
	args := m.Called(ctx, courseID, userID)
	return args.Error(0)
}

func (m *MockCourseRepository) CreateDailyCourses(ctx context.Context, days []entity.DailyCourse) error {
	args := m.Called(ctx, days)
	return args.Error(0)
}

func (m *MockCourseRepository) GetDailyCourses(ctx context.Context, courseID string) ([]entity.DailyCourse, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DailyCourse), args.Error(1)
}

func (m *MockCourseRepository) DeleteDailyCoursesByID(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

var _ persistent.CourseRepository = (*MockCourseRepository)(nil)

type MockDirectionsClient struct {
	mock.Mock
}

func (m *MockDirectionsClient) Raw(ctx context.Context, req directions.Request) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockDirectionsClient) Directions(ctx context.Context, req directions.Request) (*directions.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directions.Response), args.Error(1)
}

var _ directions.Client = (*MockDirectionsClient)(nil)

type MockPlaceSearcher struct {
	mock.Mock
}

func (m *MockPlaceSearcher) Search(ctx context.Context, keyword string) ([]places.Place, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]places.Place), args.Error(1)
}

var _ places.Searcher = (*MockPlaceSearcher)(nil)
