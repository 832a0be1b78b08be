// Package ranking holds the popularity score shared by the hall of fame, the
// weekly best list and the top community posts.
package ranking

import (
	"sort"
	"time"
)

// Score is (4*likes + 6*savedCount) / 10.
func Score(likes, savedCount int) float64 {
	return float64(4*likes+6*savedCount) / 10
}

// Ranked is anything that can be ordered by Score.
type Ranked interface {
	RankID() string
	RankCounters() (likes, savedCount int)
	RankCreatedAt() time.Time
}

// Sort orders items by score descending, breaking ties by newer createdAt and
// then by id so the output is reproducible.
func Sort[T Ranked](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		li, si := items[i].RankCounters()
		lj, sj := items[j].RankCounters()
		a, b := Score(li, si), Score(lj, sj)
		if a != b {
			return a > b
		}
		ti, tj := items[i].RankCreatedAt(), items[j].RankCreatedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return items[i].RankID() < items[j].RankID()
	})
}

// Top sorts a copy of items and keeps at most n of them; n <= 0 keeps all.
func Top[T Ranked](items []T, n int) []T {
	out := make([]T, len(items))
	copy(out, items)
	Sort(out)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
