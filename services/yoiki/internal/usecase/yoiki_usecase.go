package usecase

import (
	"context"
	"strings"
	"time"

	"travel-journal/pkg/apperr"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/validation"
	"travel-journal/services/yoiki/internal/entity"
	"travel-journal/services/yoiki/internal/repo/persistent"
)

const (
	defaultFeedLimit = 20
	maxLimit         = 100
	defaultPageSize  = 10
)

type YoikiUseCase interface {
	Feed(ctx context.Context, filter entity.FeedFilter) []entity.YoikiPost

	ListAnnouncements(ctx context.Context, page, pageSize int) *entity.AnnouncementPage
	CreateAnnouncement(ctx context.Context, userID string, input entity.AnnouncementInput) (*entity.Announcement, error)
	UpdateAnnouncement(ctx context.Context, userID, id string, input entity.AnnouncementInput) (*entity.Announcement, error)
	DeleteAnnouncement(ctx context.Context, userID, id string) error

	ListSchedule(ctx context.Context, start, end time.Time) ([]entity.ScheduleEvent, error)
	CreateEvent(ctx context.Context, userID string, input entity.ScheduleInput) (*entity.ScheduleEvent, error)
	UpdateEvent(ctx context.Context, userID, id string, input entity.ScheduleInput) (*entity.ScheduleEvent, error)
	DeleteEvent(ctx context.Context, userID, id string) error
}

type yoikiUseCase struct {
	yoikiRepo        persistent.YoikiRepository
	announcementRepo persistent.AnnouncementRepository
	scheduleRepo     persistent.ScheduleRepository
	validator        *validation.Validator
	logger           *logger.Logger
	now              func() time.Time
}

func NewYoikiUseCase(
	yoikiRepo persistent.YoikiRepository,
	announcementRepo persistent.AnnouncementRepository,
	scheduleRepo persistent.ScheduleRepository,
	validator *validation.Validator,
	logger *logger.Logger,
) YoikiUseCase {
	return &yoikiUseCase{
		yoikiRepo:        yoikiRepo,
		announcementRepo: announcementRepo,
		scheduleRepo:     scheduleRepo,
		validator:        validator,
		logger:           logger,
		now:              time.Now,
	}
}

// requireAdmin hides admin-only resources from everyone else.
func (uc *yoikiUseCase) requireAdmin(ctx context.Context, userID string) error {
	if userID == "" {
		return apperr.NewUnauthenticated()
	}
	admin, err := uc.yoikiRepo.IsAdmin(ctx, userID)
	if err != nil {
		return apperr.NewUpstream("failed to load profile", err)
	}
	if !admin {
		return apperr.NewNotFoundOrForbidden("Not found")
	}
	return nil
}

func (uc *yoikiUseCase) Feed(ctx context.Context, filter entity.FeedFilter) []entity.YoikiPost {
	if filter.Limit < 1 {
		filter.Limit = defaultFeedLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	posts, err := uc.yoikiRepo.Feed(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to load yoiki feed: %v", err)
		return []entity.YoikiPost{}
	}
	return posts
}

func (uc *yoikiUseCase) ListAnnouncements(ctx context.Context, page, pageSize int) *entity.AnnouncementPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxLimit {
		pageSize = maxLimit
	}

	announcements, count, err := uc.announcementRepo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		uc.logger.Error("Failed to list announcements: %v", err)
		return &entity.AnnouncementPage{Announcements: []entity.Announcement{}}
	}
	return &entity.AnnouncementPage{Announcements: announcements, Count: count}
}

func trimAnnouncement(input entity.AnnouncementInput) entity.AnnouncementInput {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	return input
}

func (uc *yoikiUseCase) CreateAnnouncement(ctx context.Context, userID string, input entity.AnnouncementInput) (*entity.Announcement, error) {
	if err := uc.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}
	input = trimAnnouncement(input)
	if err := uc.validator.Struct(input); err != nil {
		return nil, err
	}

	announcement, err := uc.announcementRepo.Create(ctx, input)
	if err != nil {
		return nil, apperr.NewUpstream("failed to create announcement", err)
	}
	uc.logger.Info("Announcement %s created by %s", announcement.ID, userID)
	return announcement, nil
}

func (uc *yoikiUseCase) UpdateAnnouncement(ctx context.Context, userID, id string, input entity.AnnouncementInput) (*entity.Announcement, error) {
	if err := uc.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}
	input = trimAnnouncement(input)
	if err := uc.validator.Struct(input); err != nil {
		return nil, err
	}

	announcement, err := uc.announcementRepo.Update(ctx, id, input)
	if persistent.IsNotFound(err) {
		return nil, apperr.NewNotFoundOrForbidden("Announcement not found")
	}
	if err != nil {
		return nil, apperr.NewUpstream("failed to update announcement", err)
	}
	return announcement, nil
}

func (uc *yoikiUseCase) DeleteAnnouncement(ctx context.Context, userID, id string) error {
	if err := uc.requireAdmin(ctx, userID); err != nil {
		return err
	}
	err := uc.announcementRepo.Delete(ctx, id)
	if persistent.IsNotFound(err) {
		return apperr.NewNotFoundOrForbidden("Announcement not found")
	}
	if err != nil {
		return apperr.NewUpstream("failed to delete announcement", err)
	}
	return nil
}

// ListSchedule returns the events inside [start, end]. A zero start means the
// first day of the current month and a zero end means one month after start.
func (uc *yoikiUseCase) ListSchedule(ctx context.Context, start, end time.Time) ([]entity.ScheduleEvent, error) {
	if start.IsZero() {
		now := uc.now()
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	if end.IsZero() {
		end = start.AddDate(0, 1, 0)
	}
	if end.Before(start) {
		return nil, apperr.NewValidation("end must not be before start")
	}

	events, err := uc.scheduleRepo.Between(ctx, start, end)
	if err != nil {
		uc.logger.Error("Failed to list schedule: %v", err)
		return []entity.ScheduleEvent{}, nil
	}
	return events, nil
}

func (uc *yoikiUseCase) CreateEvent(ctx context.Context, userID string, input entity.ScheduleInput) (*entity.ScheduleEvent, error) {
	if err := uc.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}
	input.Title = strings.TrimSpace(input.Title)
	if err := uc.validator.Struct(input); err != nil {
		return nil, err
	}

	event, err := uc.scheduleRepo.Create(ctx, input)
	if err != nil {
		return nil, apperr.NewUpstream("failed to create event", err)
	}
	return event, nil
}

func (uc *yoikiUseCase) UpdateEvent(ctx context.Context, userID, id string, input entity.ScheduleInput) (*entity.ScheduleEvent, error) {
	if err := uc.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}
	input.Title = strings.TrimSpace(input.Title)
	if err := uc.validator.Struct(input); err != nil {
		return nil, err
	}

	event, err := uc.scheduleRepo.Update(ctx, id, input)
	if persistent.IsNotFound(err) {
		return nil, apperr.NewNotFoundOrForbidden("Event not found")
	}
	if err != nil {
		return nil, apperr.NewUpstream("failed to update event", err)
	}
	return event, nil
}

func (uc *yoikiUseCase) DeleteEvent(ctx context.Context, userID, id string) error {
	if err := uc.requireAdmin(ctx, userID); err != nil {
		return err
	}
	err := uc.scheduleRepo.Delete(ctx, id)
	if persistent.IsNotFound(err) {
		return apperr.NewNotFoundOrForbidden("Event not found")
	}
	if err != nil {
		return apperr.NewUpstream("failed to delete event", err)
	}
	return nil
}
