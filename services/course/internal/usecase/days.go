package usecase

import (
	"strings"

	"travel-journal/services/course/internal/entity"

	"github.com/google/uuid"
)

// BuildDailyCourses turns authored days into rows. Places without a name or
// coordinates are dropped, days left empty are skipped, and every kept day
// retains its original 1-based position.
func BuildDailyCourses(courseID string, days []entity.DayInput) []entity.DailyCourse {
	rows := make([]entity.DailyCourse, 0, len(days))

	for i, day := range days {
		points := make([]entity.Waypoint, 0, len(day.Places))
		for _, place := range day.Places {
			name := strings.TrimSpace(place.Name)
			if name == "" || !place.X.Present() || !place.Y.Present() {
				continue
			}

			var trans *string
			if place.Transport != "" {
				t := place.Transport
				trans = &t
			}
			points = append(points, entity.Waypoint{
				Name:  name,
				X:     place.X.Value,
				Y:     place.Y.Value,
				Trans: trans,
			})
		}

		if len(points) == 0 {
			continue
		}
		points[len(points)-1].Trans = nil

		rows = append(rows, entity.DailyCourse{
			ID:             uuid.New().String(),
			TravelCourseID: courseID,
			Day:            i + 1,
			Points:         points,
		})
	}
	return rows
}

// TransportationTypes lists the distinct transport modes used across days in
// first-seen order.
func TransportationTypes(days []entity.DailyCourse) []string {
	seen := make(map[string]bool)
	types := []string{}
	for _, day := range days {
		for _, p := range day.Points {
			if p.Trans == nil || *p.Trans == "" || seen[*p.Trans] {
				continue
			}
			seen[*p.Trans] = true
			types = append(types, *p.Trans)
		}
	}
	return types
}
