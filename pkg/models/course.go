package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TravelType string

const (
	TravelTypePlan   TravelType = "plan"
	TravelTypeReview TravelType = "review"
)

type TravelCourse struct {
	ID         string     `gorm:"column:course_id;type:uuid;primary_key" json:"course_id"`
	UserID     string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string     `gorm:"not null" json:"title"`
	TravelType TravelType `gorm:"type:varchar(10);not null" json:"travel_type"`
	// Region is the flattened city list used for overlap filtering;
	// RegionCities keeps the ordered {region, cities} selection.
	Region       pq.StringArray `gorm:"type:text[]" json:"region"`
	RegionCities datatypes.JSON `gorm:"type:jsonb" json:"region_cities"`
	StartDate    time.Time      `gorm:"type:date" json:"start_date"`
	EndDate      time.Time      `gorm:"type:date" json:"end_date"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	DailyCourses []DailyCourse `gorm:"foreignKey:TravelCourseID;references:ID" json:"daily_courses,omitempty"`
}

func (TravelCourse) TableName() string {
	return "travel_courses"
}

func (c *TravelCourse) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// DailyCourse is one day of a course. Points is a JSON array of
// {name, x, y, trans}.
type DailyCourse struct {
	ID             string         `gorm:"column:daily_course_id;type:uuid;primary_key" json:"daily_course_id"`
	TravelCourseID string         `gorm:"type:uuid;not null;index" json:"travel_course_id"`
	Day            int            `gorm:"not null" json:"day"`
	Points         datatypes.JSON `gorm:"type:jsonb;not null" json:"points"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
}

func (DailyCourse) TableName() string {
	return "daily_courses"
}

func (d *DailyCourse) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}
