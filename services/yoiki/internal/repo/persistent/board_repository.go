package persistent

import (
	"context"
	"errors"
	"time"

	"travel-journal/pkg/models"
	"travel-journal/services/yoiki/internal/entity"

	"gorm.io/gorm"
)

type AnnouncementRepository interface {
	List(ctx context.Context, limit, offset int) ([]entity.Announcement, int64, error)
	Create(ctx context.Context, input entity.AnnouncementInput) (*entity.Announcement, error)
	Update(ctx context.Context, id string, input entity.AnnouncementInput) (*entity.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleRepository interface {
	Between(ctx context.Context, start, end time.Time) ([]entity.ScheduleEvent, error)
	Create(ctx context.Context, input entity.ScheduleInput) (*entity.ScheduleEvent, error)
	Update(ctx context.Context, id string, input entity.ScheduleInput) (*entity.ScheduleEvent, error)
	Delete(ctx context.Context, id string) error
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) List(ctx context.Context, limit, offset int) ([]entity.Announcement, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Announcement{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if count == 0 || int64(offset) >= count {
		return []entity.Announcement{}, count, nil
	}

	var rows []models.Announcement
	err := r.db.WithContext(ctx).
		Order("pinned DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	announcements := make([]entity.Announcement, len(rows))
	for i := range rows {
		announcements[i] = ToAnnouncementEntity(&rows[i])
	}
	return announcements, count, nil
}

func (r *announcementRepository) Create(ctx context.Context, input entity.AnnouncementInput) (*entity.Announcement, error) {
	row := models.Announcement{Title: input.Title, Content: input.Content, Pinned: input.Pinned}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	announcement := ToAnnouncementEntity(&row)
	return &announcement, nil
}

func (r *announcementRepository) Update(ctx context.Context, id string, input entity.AnnouncementInput) (*entity.Announcement, error) {
	var row models.Announcement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Announcement{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":   input.Title,
			"content": input.Content,
			"pinned":  input.Pinned,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("id = ?", id).Take(&row).Error
	})
	if err != nil {
		return nil, err
	}
	announcement := ToAnnouncementEntity(&row)
	return &announcement, nil
}

func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Announcement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Between returns events that lie entirely inside [start, end], earliest first.
func (r *scheduleRepository) Between(ctx context.Context, start, end time.Time) ([]entity.ScheduleEvent, error) {
	var rows []models.ScheduleEvent
	err := r.db.WithContext(ctx).
		Where("start_time >= ? AND end_time <= ?", start, end).
		Order("start_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]entity.ScheduleEvent, len(rows))
	for i := range rows {
		events[i] = ToScheduleEntity(&rows[i])
	}
	return events, nil
}

func (r *scheduleRepository) Create(ctx context.Context, input entity.ScheduleInput) (*entity.ScheduleEvent, error) {
	row := models.ScheduleEvent{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	event := ToScheduleEntity(&row)
	return &event, nil
}

func (r *scheduleRepository) Update(ctx context.Context, id string, input entity.ScheduleInput) (*entity.ScheduleEvent, error) {
	var row models.ScheduleEvent
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ScheduleEvent{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":       input.Title,
			"description": input.Description,
			"location":    input.Location,
			"start_time":  input.StartTime,
			"end_time":    input.EndTime,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("id = ?", id).Take(&row).Error
	})
	if err != nil {
		return nil, err
	}
	event := ToScheduleEntity(&row)
	return &event, nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ScheduleEvent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsNotFound reports a missing announcement or schedule event.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
