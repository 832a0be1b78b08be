package usecase

import (
	"sort"

	"travel-journal/services/course/internal/entity"
)

// NormalizeDailyCourses keeps the most recently written row for every day
// index and returns them ordered by day. The input slice is not modified.
func NormalizeDailyCourses(rows []entity.DailyCourse) []entity.DailyCourse {
	byNewest := make([]entity.DailyCourse, len(rows))
	copy(byNewest, rows)
	sort.SliceStable(byNewest, func(i, j int) bool {
		return byNewest[i].CreatedAt.After(byNewest[j].CreatedAt)
	})

	seen := make(map[int]bool, len(byNewest))
	result := make([]entity.DailyCourse, 0, len(byNewest))
	for _, row := range byNewest {
		if seen[row.Day] {
			continue
		}
		seen[row.Day] = true
		result = append(result, row)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Day < result[j].Day
	})
	return result
}
