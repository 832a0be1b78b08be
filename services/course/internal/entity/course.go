package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type TravelType string

const (
	TravelTypePlan   TravelType = "plan"
	TravelTypeReview TravelType = "review"
)

// MaxDays bounds the number of days a single course may carry.
const MaxDays = 30

// Waypoint is one stop of a day. Trans describes the leg to the next stop and
// is always nil on the last stop.
type Waypoint struct {
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Trans *string `json:"trans"`
}

type DailyCourse struct {
	ID             string     `json:"daily_course_id"`
	TravelCourseID string     `json:"travel_course_id"`
	Day            int        `json:"day"`
	Points         []Waypoint `json:"points"`
	CreatedAt      time.Time  `json:"created_at"`
}

type RegionCities struct {
	Region string   `json:"region"`
	Cities []string `json:"cities"`
}

type TravelCourse struct {
	ID           string         `json:"course_id"`
	UserID       string         `json:"user_id"`
	Title        string         `json:"title"`
	TravelType   TravelType     `json:"travel_type"`
	Region       []string       `json:"region"`
	RegionCities []RegionCities `json:"region_cities"`
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DailyCourses []DailyCourse  `json:"daily_courses"`
}

// CourseInput is the authoring payload for create and update.
type CourseInput struct {
	Title          string         `json:"title" validate:"notblank,max=200"`
	TravelType     TravelType     `json:"travelType" validate:"required,oneof=plan review"`
	StartDate      string         `json:"startDate" validate:"ymd"`
	EndDate        string         `json:"endDate" validate:"ymd"`
	SelectedCities SelectedCities `json:"selectedCities"`
	Days           []DayInput     `json:"days" validate:"max=30,dive"`
}

type DayInput struct {
	Places []PlaceInput `json:"places" validate:"dive"`
}

type PlaceInput struct {
	Name      string     `json:"name"`
	X         Coordinate `json:"x"`
	Y         Coordinate `json:"y"`
	Transport string     `json:"transport,omitempty" validate:"omitempty,transport"`
}

// Coordinate accepts a JSON number, a numeric string, null or "".
type Coordinate struct {
	Value float64
	Valid bool
}

func NewCoordinate(v float64) Coordinate {
	return Coordinate{Value: v, Valid: true}
}

// Present reports whether the coordinate can be stored on a waypoint.
func (c Coordinate) Present() bool {
	return c.Valid && c.Value != 0
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	*c = Coordinate{}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %q", raw)
	}
	c.Value, c.Valid = v, true
	return nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// SelectedCities is the ordered region -> cities selection. It decodes both
// [{region, cities}] and a {"region": [cities]} object, keeping object key
// order.
type SelectedCities []RegionCities

func (s *SelectedCities) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}

	if data[0] == '[' {
		var list []RegionCities
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*s = list
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}

	var out SelectedCities
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		region, ok := tok.(string)
		if !ok {
			return fmt.Errorf("invalid region key %v", tok)
		}
		var cities []string
		if err := dec.Decode(&cities); err != nil {
			return err
		}
		out = append(out, RegionCities{Region: region, Cities: cities})
	}
	*s = out
	return nil
}

// Flatten returns every selected city in selection order.
func (s SelectedCities) Flatten() []string {
	cities := []string{}
	for _, rc := range s {
		cities = append(cities, rc.Cities...)
	}
	return cities
}
