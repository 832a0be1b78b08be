package persistent

import (
	"encoding/json"
	"fmt"
	"time"

	"travel-journal/pkg/models"
	"travel-journal/services/course/internal/entity"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

func ToCourseEntity(m *models.TravelCourse) (*entity.TravelCourse, error) {
	if m == nil {
		return nil, nil
	}

	course := &entity.TravelCourse{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		TravelType:   entity.TravelType(m.TravelType),
		Region:       []string(m.Region),
		RegionCities: []entity.RegionCities{},
		StartDate:    formatDate(m.StartDate),
		EndDate:      formatDate(m.EndDate),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DailyCourses: []entity.DailyCourse{},
	}
	if course.Region == nil {
		course.Region = []string{}
	}
	if len(m.RegionCities) > 0 {
		if err := json.Unmarshal(m.RegionCities, &course.RegionCities); err != nil {
			return nil, fmt.Errorf("course %s: decode region_cities: %w", m.ID, err)
		}
	}

	for i := range m.DailyCourses {
		day, err := ToDailyCourseEntity(&m.DailyCourses[i])
		if err != nil {
			return nil, err
		}
		course.DailyCourses = append(course.DailyCourses, day)
	}
	return course, nil
}

func ToCourseModel(e *entity.TravelCourse) (*models.TravelCourse, error) {
	if e == nil {
		return nil, nil
	}

	regionCities, err := json.Marshal(e.RegionCities)
	if err != nil {
		return nil, err
	}

	m := &models.TravelCourse{
		ID:           e.ID,
		UserID:       e.UserID,
		Title:        e.Title,
		TravelType:   models.TravelType(e.TravelType),
		Region:       e.Region,
		RegionCities: datatypes.JSON(regionCities),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}

	if m.StartDate, err = parseDate(e.StartDate); err != nil {
		return nil, err
	}
	if m.EndDate, err = parseDate(e.EndDate); err != nil {
		return nil, err
	}
	return m, nil
}

func ToDailyCourseEntity(m *models.DailyCourse) (entity.DailyCourse, error) {
	day := entity.DailyCourse{
		ID:             m.ID,
		TravelCourseID: m.TravelCourseID,
		Day:            m.Day,
		Points:         []entity.Waypoint{},
		CreatedAt:      m.CreatedAt,
	}
	if len(m.Points) > 0 {
		if err := json.Unmarshal(m.Points, &day.Points); err != nil {
			return entity.DailyCourse{}, fmt.Errorf("daily course %s: decode points: %w", m.ID, err)
		}
	}
	return day, nil
}

func ToDailyCourseModel(e *entity.DailyCourse) (*models.DailyCourse, error) {
	points, err := json.Marshal(e.Points)
	if err != nil {
		return nil, err
	}

	return &models.DailyCourse{
		ID:             e.ID,
		TravelCourseID: e.TravelCourseID,
		Day:            e.Day,
		Points:         datatypes.JSON(points),
		CreatedAt:      e.CreatedAt,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
