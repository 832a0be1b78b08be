package persistent

import (
	"context"
	"errors"

	"travel-journal/pkg/models"
	"travel-journal/services/course/internal/entity"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a course row does not exist.
var ErrNotFound = errors.New("travel course not found")

type CourseRepository interface {
	Create(ctx context.Context, course *entity.TravelCourse) error
	GetByID(ctx context.Context, courseID string) (*entity.TravelCourse, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.TravelCourse, error)
	CountOwned(ctx context.Context, courseID, userID string) (int64, error)
	UpdateScalars(ctx context.Context, course *entity.TravelCourse) error
	DeleteCourse(ctx context.Context, courseID string) error
	DeleteOwned(ctx context.Context, courseID, userID string) error

	CreateDailyCourses(ctx context.Context, days []entity.DailyCourse) error
	GetDailyCourses(ctx context.Context, courseID string) ([]entity.DailyCourse, error)
	DeleteDailyCoursesByID(ctx context.Context, ids []string) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *entity.TravelCourse) error {
	courseModel, err := ToCourseModel(course)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(courseModel).Error; err != nil {
		return err
	}

	course.ID = courseModel.ID
	course.CreatedAt = courseModel.CreatedAt
	course.UpdatedAt = courseModel.UpdatedAt
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, courseID string) (*entity.TravelCourse, error) {
	var courseModel models.TravelCourse
	err := r.db.WithContext(ctx).
		Preload("DailyCourses").
		Where("course_id = ?", courseID).
		First(&courseModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ToCourseEntity(&courseModel)
}

func (r *courseRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.TravelCourse, error) {
	var courseModels []models.TravelCourse
	query := r.db.WithContext(ctx).
		Preload("DailyCourses").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&courseModels).Error; err != nil {
		return nil, err
	}

	courses := make([]*entity.TravelCourse, len(courseModels))
	for i := range courseModels {
		course, err := ToCourseEntity(&courseModels[i])
		if err != nil {
			return nil, err
		}
		courses[i] = course
	}
	return courses, nil
}

func (r *courseRepository) CountOwned(ctx context.Context, courseID, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TravelCourse{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&count).Error
	return count, err
}

func (r *courseRepository) UpdateScalars(ctx context.Context, course *entity.TravelCourse) error {
	courseModel, err := ToCourseModel(course)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&models.TravelCourse{}).
		Where("course_id = ? AND user_id = ?", course.ID, course.UserID).
		Updates(map[string]interface{}{
			"title":         courseModel.Title,
			"travel_type":   courseModel.TravelType,
			"region":        courseModel.Region,
			"region_cities": courseModel.RegionCities,
			"start_date":    courseModel.StartDate,
			"end_date":      courseModel.EndDate,
		}).Error
}

func (r *courseRepository) DeleteCourse(ctx context.Context, courseID string) error {
	return r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&models.TravelCourse{}).Error
}

// DeleteOwned removes the course's days and then the course, both scoped to
// the owner. A course owned by someone else is left untouched.
func (r *courseRepository) DeleteOwned(ctx context.Context, courseID, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.TravelCourse{}).
			Select("course_id").
			Where("course_id = ? AND user_id = ?", courseID, userID)

		if err := tx.Where("travel_course_id IN (?)", owned).Delete(&models.DailyCourse{}).Error; err != nil {
			return err
		}

		return tx.Where("course_id = ? AND user_id = ?", courseID, userID).Delete(&models.TravelCourse{}).Error
	})
}

func (r *courseRepository) CreateDailyCourses(ctx context.Context, days []entity.DailyCourse) error {
	if len(days) == 0 {
		return nil
	}

	dayModels := make([]*models.DailyCourse, 0, len(days))
	for i := range days {
		m, err := ToDailyCourseModel(&days[i])
		if err != nil {
			return err
		}
		dayModels = append(dayModels, m)
	}

	return r.db.WithContext(ctx).Create(&dayModels).Error
}

func (r *courseRepository) GetDailyCourses(ctx context.Context, courseID string) ([]entity.DailyCourse, error) {
	var dayModels []models.DailyCourse
	if err := r.db.WithContext(ctx).Where("travel_course_id = ?", courseID).Find(&dayModels).Error; err != nil {
		return nil, err
	}

	days := make([]entity.DailyCourse, len(dayModels))
	for i := range dayModels {
		day, err := ToDailyCourseEntity(&dayModels[i])
		if err != nil {
			return nil, err
		}
		days[i] = day
	}
	return days, nil
}

func (r *courseRepository) DeleteDailyCoursesByID(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("daily_course_id IN ?", ids).Delete(&models.DailyCourse{}).Error
}
