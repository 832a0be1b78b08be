package usecase

import (
	"context"
	"errors"
	"time"

	"travel-journal/pkg/apperr"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/queue"
	"travel-journal/pkg/validation"
	"travel-journal/services/course/internal/entity"
	"travel-journal/services/course/internal/repo/persistent"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type CourseUseCase interface {
	CreateCourse(ctx context.Context, userID string, input entity.CourseInput) (*entity.TravelCourse, error)
	UpdateCourse(ctx context.Context, userID, courseID string, input entity.CourseInput) (*entity.TravelCourse, error)
	DeleteCourse(ctx context.Context, userID, courseID string) error
	GetCourse(ctx context.Context, courseID string) (*entity.TravelCourse, error)
	ListMyCourses(ctx context.Context, userID string, page, pageSize int) ([]*entity.TravelCourse, bool, error)
	TransportationTypes(ctx context.Context, courseID string) []string
	Regions(ctx context.Context, courseID string) []string
}

type courseUseCase struct {
	courseRepo persistent.CourseRepository
	validator  *validation.Validator
	publisher  queue.Publisher
	logger     *logger.Logger
	now        func() time.Time
}

func NewCourseUseCase(
	courseRepo persistent.CourseRepository,
	validator *validation.Validator,
	publisher queue.Publisher,
	logger *logger.Logger,
) CourseUseCase {
	return &courseUseCase{
		courseRepo: courseRepo,
		validator:  validator,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

func (uc *courseUseCase) validate(input entity.CourseInput, creating bool) error {
	if err := uc.validator.Struct(input); err != nil {
		return err
	}

	start, _ := time.Parse(validation.DateLayout, input.StartDate)
	end, _ := time.Parse(validation.DateLayout, input.EndDate)
	if end.Before(start) {
		return apperr.NewValidation("end date must not be before start date")
	}

	if creating && input.TravelType == entity.TravelTypePlan {
		now := uc.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if start.Before(today) {
			return apperr.NewValidation("a plan must not start in the past")
		}
	}
	return nil
}

func courseFromInput(userID string, input entity.CourseInput) *entity.TravelCourse {
	regionCities := []entity.RegionCities(input.SelectedCities)
	if regionCities == nil {
		regionCities = []entity.RegionCities{}
	}

	return &entity.TravelCourse{
		UserID:       userID,
		Title:        input.Title,
		TravelType:   input.TravelType,
		Region:       input.SelectedCities.Flatten(),
		RegionCities: regionCities,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}
}

func (uc *courseUseCase) CreateCourse(ctx context.Context, userID string, input entity.CourseInput) (*entity.TravelCourse, error) {
	if userID == "" {
		return nil, apperr.NewUnauthenticated()
	}
	if err := uc.validate(input, true); err != nil {
		return nil, err
	}

	course := courseFromInput(userID, input)
	if err := uc.courseRepo.Create(ctx, course); err != nil {
		uc.logger.Error("Failed to create travel course: %v", err)
		return nil, apperr.NewUpstream("failed to create travel course", err)
	}

	days := BuildDailyCourses(course.ID, input.Days)
	if len(days) > 0 {
		if err := uc.courseRepo.CreateDailyCourses(ctx, days); err != nil {
			uc.logger.Error("Failed to create daily courses for %s: %v", course.ID, err)

			if rbErr := uc.courseRepo.DeleteCourse(ctx, course.ID); rbErr != nil {
				uc.logger.Error("Failed to roll back travel course %s: %v", course.ID, rbErr)
				return nil, apperr.NewPartialWrite("failed to create daily courses and roll back travel course", errors.Join(err, rbErr))
			}
			return nil, apperr.NewUpstream("failed to create daily courses", err)
		}
	}

	course.DailyCourses = NormalizeDailyCourses(days)

	queue.PublishAsync(uc.publisher, uc.logger, queue.Event{
		Type:        queue.EventCourseCreated,
		RecipientID: userID,
		ActorID:     userID,
		CourseID:    course.ID,
	})

	uc.logger.Info("Travel course created: %s (%d days)", course.ID, len(days))
	return course, nil
}

// UpdateCourse writes the new days before removing the old ones so a reader
// never sees a course without days. Duplicate days during the window are
// resolved by NormalizeDailyCourses.
func (uc *courseUseCase) UpdateCourse(ctx context.Context, userID, courseID string, input entity.CourseInput) (*entity.TravelCourse, error) {
	if userID == "" {
		return nil, apperr.NewUnauthenticated()
	}
	if err := uc.validate(input, false); err != nil {
		return nil, err
	}

	count, err := uc.courseRepo.CountOwned(ctx, courseID, userID)
	if err != nil {
		uc.logger.Error("Failed to check course ownership: %v", err)
		return nil, apperr.NewUpstream("failed to load travel course", err)
	}
	if count == 0 {
		return nil, apperr.NewNotFoundOrForbidden("Course not found or user doesn't have permission")
	}

	previous, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperr.NewNotFoundOrForbidden("Course not found or user doesn't have permission")
		}
		return nil, apperr.NewUpstream("failed to load travel course", err)
	}
	oldDayIDs := make([]string, len(previous.DailyCourses))
	for i, day := range previous.DailyCourses {
		oldDayIDs[i] = day.ID
	}

	course := courseFromInput(userID, input)
	course.ID = courseID
	course.CreatedAt = previous.CreatedAt

	if err := uc.courseRepo.UpdateScalars(ctx, course); err != nil {
		uc.logger.Error("Failed to update travel course %s: %v", courseID, err)
		return nil, apperr.NewUpstream("failed to update travel course", err)
	}

	days := BuildDailyCourses(courseID, input.Days)
	if len(days) > 0 {
		if err := uc.courseRepo.CreateDailyCourses(ctx, days); err != nil {
			uc.logger.Error("Failed to insert daily courses for %s: %v", courseID, err)
			return nil, uc.restore(ctx, previous, nil, err)
		}
	}

	if len(oldDayIDs) > 0 {
		if err := uc.courseRepo.DeleteDailyCoursesByID(ctx, oldDayIDs); err != nil {
			uc.logger.Error("Failed to remove previous daily courses for %s: %v", courseID, err)
			newDayIDs := make([]string, len(days))
			for i, day := range days {
				newDayIDs[i] = day.ID
			}
			return nil, uc.restore(ctx, previous, newDayIDs, err)
		}
	}

	course.DailyCourses = NormalizeDailyCourses(days)
	uc.logger.Info("Travel course updated: %s (%d days)", courseID, len(days))
	return course, nil
}

// restore puts back the previous scalars and drops rows inserted by a failed
// update. It reports PartialWriteFailure when that is not possible.
func (uc *courseUseCase) restore(ctx context.Context, previous *entity.TravelCourse, insertedDayIDs []string, cause error) error {
	var rbErrs []error

	if len(insertedDayIDs) > 0 {
		if err := uc.courseRepo.DeleteDailyCoursesByID(ctx, insertedDayIDs); err != nil {
			rbErrs = append(rbErrs, err)
		}
	}
	if err := uc.courseRepo.UpdateScalars(ctx, previous); err != nil {
		rbErrs = append(rbErrs, err)
	}

	if len(rbErrs) > 0 {
		uc.logger.Error("Failed to restore travel course %s: %v", previous.ID, errors.Join(rbErrs...))
		return apperr.NewPartialWrite("failed to update daily courses and restore travel course", errors.Join(append([]error{cause}, rbErrs...)...))
	}
	return apperr.NewUpstream("failed to update daily courses", cause)
}

func (uc *courseUseCase) DeleteCourse(ctx context.Context, userID, courseID string) error {
	if userID == "" {
		return apperr.NewUnauthenticated()
	}

	if err := uc.courseRepo.DeleteOwned(ctx, courseID, userID); err != nil {
		uc.logger.Error("Failed to delete travel course %s: %v", courseID, err)
		return apperr.NewUpstream("failed to delete travel course", err)
	}
	return nil
}

func (uc *courseUseCase) GetCourse(ctx context.Context, courseID string) (*entity.TravelCourse, error) {
	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperr.NewNotFoundOrForbidden("travel course not found")
		}
		uc.logger.Error("Failed to load travel course %s: %v", courseID, err)
		return nil, apperr.NewUpstream("failed to load travel course", err)
	}

	course.DailyCourses = NormalizeDailyCourses(course.DailyCourses)
	return course, nil
}

func (uc *courseUseCase) ListMyCourses(ctx context.Context, userID string, page, pageSize int) ([]*entity.TravelCourse, bool, error) {
	if userID == "" {
		return nil, false, apperr.NewUnauthenticated()
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	courses, err := uc.courseRepo.ListByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		uc.logger.Error("Failed to list travel courses for %s: %v", userID, err)
		return nil, false, apperr.NewUpstream("failed to list travel courses", err)
	}

	for _, course := range courses {
		course.DailyCourses = NormalizeDailyCourses(course.DailyCourses)
	}
	return courses, len(courses) == pageSize, nil
}

func (uc *courseUseCase) TransportationTypes(ctx context.Context, courseID string) []string {
	days, err := uc.courseRepo.GetDailyCourses(ctx, courseID)
	if err != nil {
		uc.logger.Error("Failed to extract transportation types for %s: %v", courseID, err)
		return []string{}
	}
	return TransportationTypes(NormalizeDailyCourses(days))
}

func (uc *courseUseCase) Regions(ctx context.Context, courseID string) []string {
	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		uc.logger.Error("Failed to load regions for %s: %v", courseID, err)
		return []string{}
	}
	return course.Region
}
