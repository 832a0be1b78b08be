package usecase

import (
	"math"
	"sort"
	"time"

	"travel-journal/services/post/internal/entity"
)

const DefaultRelatedLimit = 4

// ScoreRelated ranks candidates against ref and keeps the best limit of them.
// The reference post itself is never returned.
func ScoreRelated(ref *entity.Post, candidates []*entity.Post, limit int, now time.Time) []entity.RelatedPost {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	refTags := toSet(ref.Tags)
	refRegions := toSet(ref.Regions())

	scored := make([]entity.RelatedPost, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == nil || candidate.ID == ref.ID {
			continue
		}
		scored = append(scored, entity.RelatedPost{
			Post:      candidate,
			Relevance: relevance(candidate, refTags, refRegions, now),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Relevance > scored[j].Relevance
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func relevance(p *entity.Post, refTags, refRegions map[string]struct{}, now time.Time) float64 {
	days := now.Sub(p.CreatedAt).Hours() / 24
	freshness := math.Max(0, 30-days) * 0.5

	return 10*float64(overlap(p.Tags, refTags)) +
		8*float64(overlap(p.Regions(), refRegions)) +
		0.5*float64(p.Engagement.Likes) +
		0.1*float64(p.Engagement.Views) +
		0.3*float64(p.Engagement.SavedCount) +
		freshness
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func overlap(values []string, set map[string]struct{}) int {
	seen := make(map[string]struct{}, len(values))
	n := 0
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := set[v]; ok {
			n++
		}
	}
	return n
}
