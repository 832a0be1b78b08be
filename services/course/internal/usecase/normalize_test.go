package usecase

import (
	"testing"
	"time"

	"travel-journal/services/course/internal/entity"

	"github.com/stretchr/testify/assert"
)

func dayRow(id string, day int, createdAt time.Time) entity.DailyCourse {
	return entity.DailyCourse{ID: id, TravelCourseID: "course-1", Day: day, CreatedAt: createdAt}
}

func TestNormalizeDailyCourses_NewestWins(t *testing.T) {
	t1 := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	rows := []entity.DailyCourse{
		dayRow("day2-old", 2, t1),
		dayRow("day1", 1, t1),
		dayRow("day2-new", 2, t2),
	}

	got := NormalizeDailyCourses(rows)

	assert.Len(t, got, 2)
	assert.Equal(t, "day1", got[0].ID)
	assert.Equal(t, "day2-new", got[1].ID)
}

func TestNormalizeDailyCourses_Idempotent(t *testing.T) {
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	rows := []entity.DailyCourse{
		dayRow("a", 3, base),
		dayRow("b", 1, base.Add(2*time.Second)),
		dayRow("c", 3, base.Add(time.Second)),
		dayRow("d", 1, base),
		dayRow("e", 2, base),
	}

	once := NormalizeDailyCourses(rows)
	twice := NormalizeDailyCourses(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, []int{1, 2, 3}, []int{once[0].Day, once[1].Day, once[2].Day})
	assert.Equal(t, "b", once[0].ID)
	assert.Equal(t, "c", once[2].ID)
}

func TestNormalizeDailyCourses_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	rows := []entity.DailyCourse{
		dayRow("late-day", 5, base),
		dayRow("early-day", 1, base.Add(time.Hour)),
	}

	NormalizeDailyCourses(rows)

	assert.Equal(t, "late-day", rows[0].ID)
	assert.Equal(t, "early-day", rows[1].ID)
}

func TestNormalizeDailyCourses_Empty(t *testing.T) {
	assert.Empty(t, NormalizeDailyCourses(nil))
}
